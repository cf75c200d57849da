package word

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"scrapdash/internal/config"
	"scrapdash/internal/stats"

	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(rep *stats.Report, cfg *config.Config) error {
	// 1. Write the placeholder template to a temp file
	tmpFile, err := os.CreateTemp("", "scrapdash-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath) // Clean up

	if err := writeTemplate(tmpPath); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	// 2. Open docx from temp path
	r, err := docx.ReadDocxFile(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 3. Replace summary placeholders
	doc.Replace("{{Date}}", rep.GeneratedAt, -1)
	doc.Replace("{{SourceFile}}", rep.SourceFile, -1)
	doc.Replace("{{DateRange}}", rep.Overview.DateRange, -1)

	// 4. Generate the summary body as plain text
	// The docx library handles the XML encoding and line breaks
	doc.Replace("{{Content}}", buildSummaryText(rep), -1)

	outputFile := cfg.OutputBase() + ".docx"
	if err := doc.WriteToFile(outputFile); err != nil {
		return fmt.Errorf("failed to write Word summary: %w", err)
	}

	return nil
}

func buildSummaryText(rep *stats.Report) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("KEY FIGURES\n\n")
	b.WriteString(p.Sprintf("  • Inspection records: %d\n", rep.Overview.TotalRecords))
	b.WriteString(p.Sprintf("  • Parts checked: %.0f\n", rep.Overview.TotalChecked))
	b.WriteString(p.Sprintf("  • NOK parts: %.0f\n", rep.Overview.TotalNOK))
	b.WriteString(fmt.Sprintf("  • Overall scrap rate: %.2f%%\n", rep.Overview.ScrapRate))
	b.WriteString(fmt.Sprintf("  • Overall quality rate: %.2f%%\n", rep.Overview.QualityRate))
	b.WriteString(fmt.Sprintf("  • Daily scrap rate: mean %.2f%%, median %.2f%%, peak %.2f%% over %d days\n",
		rep.Rates.Mean, rep.Rates.Median, rep.Rates.Max, rep.Rates.Days))
	b.WriteString("\n" + strings.Repeat("=", 60) + "\n\n")

	b.WriteString("WORST MACHINES\n\n")
	for _, line := range topGroupLines(p, rep.Machines, 5) {
		b.WriteString(line)
	}

	b.WriteString("\nWORST PART NUMBERS\n\n")
	for _, line := range topGroupLines(p, rep.Parts, 5) {
		b.WriteString(line)
	}

	if len(rep.Monthly) > 0 {
		b.WriteString("\nMONTHLY TREND\n\n")
		for _, m := range rep.Monthly {
			b.WriteString(p.Sprintf("  %s: %.0f checked, %.0f NOK", m.Label, m.TotalChecked, m.TotalNOK))
			b.WriteString(fmt.Sprintf(" (scrap %.2f%%)\n", m.ScrapRate))
		}
	}

	return b.String()
}

// topGroupLines renders the n worst keys of a grouping by NOK count
func topGroupLines(p *message.Printer, groups map[string]stats.GroupStat, n int) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if groups[keys[i]].TotalNOK != groups[keys[j]].TotalNOK {
			return groups[keys[i]].TotalNOK > groups[keys[j]].TotalNOK
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		st := groups[k]
		line := p.Sprintf("  %s: %.0f NOK of %.0f checked", k, st.TotalNOK, st.TotalChecked)
		line += fmt.Sprintf(" (%.2f%%)\n", st.ScrapRate)
		lines = append(lines, line)
	}
	return lines
}
