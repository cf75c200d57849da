package extract

import (
	"regexp"
	"sort"
)

// partNumberPattern matches the three part-number shapes found in the
// CONTROL sheets: Rexroth-style material numbers (R900305231), dotted
// drawing codes (F-688038.02-0411.WH.WE36) and triple-segment numeric
// codes (1234-5678-90).
var partNumberPattern = regexp.MustCompile(`[A-Z]\d{9}|[A-Z]-\d{6}\.\d{2}-\d{4}\.[A-Z]{2}\.[A-Z]{2}\d{0,2}|\d{4}-\d{4}-\d{2}`)

// PartNumbers scans every string cell of the record and collects all
// part-number matches, deduplicated and sorted for deterministic
// output. A row may legitimately yield zero, one or many numbers.
func PartNumbers(fields map[string]any) []string {
	seen := make(map[string]bool)
	for _, v := range fields {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		for _, m := range partNumberPattern.FindAllString(s, -1) {
			seen[m] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for pn := range seen {
		out = append(out, pn)
	}
	sort.Strings(out)
	return out
}
