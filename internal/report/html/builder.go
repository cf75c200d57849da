package html

import (
	"encoding/json"
	"html/template"
	"os"
	"sort"

	"scrapdash/internal/config"
	"scrapdash/internal/stats"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type DashboardExporter struct{}

func NewDashboardExporter() *DashboardExporter {
	return &DashboardExporter{}
}

// GroupRow is a grouping entry flattened for table rendering
type GroupRow struct {
	Key string
	stats.GroupStat
}

// DashboardData feeds the dashboard template: KPI values plus the
// chart payloads pre-marshalled as JSON
type DashboardData struct {
	GeneratedAt string
	SourceFile  string
	DateRange   string

	TotalRecords int
	TotalChecked string
	TotalOK      string
	TotalNOK     string
	ScrapRate    float64
	QualityRate  float64
	Rates        stats.RateSummary

	Machines   []GroupRow
	Inspectors []GroupRow
	Weekly     []stats.TimeBucket
	Monthly    []stats.TimeBucket

	TrendJSON    template.JS
	MachineJSON  template.JS
	CategoryJSON template.JS
	DailyJSON    template.JS
	PartJSON     template.JS
}

func (e *DashboardExporter) Export(rep *stats.Report, cfg *config.Config) error {
	outputFile := cfg.OutputBase() + ".html"

	data, err := buildData(rep)
	if err != nil {
		return err
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("dashboard").Parse(DashboardTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}

func buildData(rep *stats.Report) (*DashboardData, error) {
	p := message.NewPrinter(language.English)

	data := &DashboardData{
		GeneratedAt:  rep.GeneratedAt,
		SourceFile:   rep.SourceFile,
		DateRange:    rep.Overview.DateRange,
		TotalRecords: rep.Overview.TotalRecords,
		TotalChecked: p.Sprintf("%.0f", rep.Overview.TotalChecked),
		TotalOK:      p.Sprintf("%.0f", rep.Overview.TotalOK),
		TotalNOK:     p.Sprintf("%.0f", rep.Overview.TotalNOK),
		ScrapRate:    rep.Overview.ScrapRate,
		QualityRate:  rep.Overview.QualityRate,
		Rates:        rep.Rates,
		Machines:     sortedRows(rep.Machines),
		Inspectors:   sortedRows(rep.Inspectors),
		Weekly:       rep.Weekly,
		Monthly:      rep.Monthly,
	}

	blobs := []struct {
		dst *template.JS
		src any
	}{
		{&data.TrendJSON, rep.Trend},
		{&data.MachineJSON, rep.Machines},
		{&data.CategoryJSON, rep.Categories},
		{&data.DailyJSON, rep.Daily},
		{&data.PartJSON, rep.Parts},
	}
	for _, b := range blobs {
		raw, err := json.Marshal(b.src)
		if err != nil {
			return nil, err
		}
		*b.dst = template.JS(raw)
	}

	return data, nil
}

// sortedRows orders a grouping map by scrap rate descending, key
// ascending on ties, for the breakdown tables
func sortedRows(groups map[string]stats.GroupStat) []GroupRow {
	rows := make([]GroupRow, 0, len(groups))
	for k, st := range groups {
		rows = append(rows, GroupRow{Key: k, GroupStat: st})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ScrapRate != rows[j].ScrapRate {
			return rows[i].ScrapRate > rows[j].ScrapRate
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
