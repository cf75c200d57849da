package extract

import (
	"fmt"
	"strings"
)

// Resolve returns the value of the first alias present in the record
// with a non-nil, non-blank value. Alias order is the caller's priority
// order and matching is exact: header normalization happens upstream,
// not here. Returns false when no alias yields a value.
func Resolve(fields map[string]any, aliases []string) (any, bool) {
	for _, name := range aliases {
		v, ok := fields[name]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// ResolveString resolves an alias list and renders the value as a
// trimmed string, for identifier fields like machine or inspector.
func ResolveString(fields map[string]any, aliases []string) (string, bool) {
	v, ok := Resolve(fields, aliases)
	if !ok {
		return "", false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s), true
	}
	return strings.TrimSpace(fmt.Sprint(v)), true
}
