package report

import (
	"strings"

	"scrapdash/internal/report/html"
	"scrapdash/internal/report/word"
)

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "html", "dashboard":
			exporters = append(exporters, html.NewDashboardExporter())
		case "excel", "xlsx":
			exporters = append(exporters, NewExcelExporter())
		case "word", "docx":
			exporters = append(exporters, word.NewWordExporter())
		case "json":
			exporters = append(exporters, NewJSONExporter())
		}
	}

	return exporters
}
