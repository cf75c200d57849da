package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrapdash/internal/config"
	"scrapdash/internal/stats"
)

func sampleReport() *stats.Report {
	return &stats.Report{
		GeneratedAt: "2024-06-01 12:00",
		SourceFile:  "CONTROL.xlsx",
		Overview: stats.Overview{
			TotalRecords: 2,
			TotalChecked: 200,
			TotalOK:      185,
			TotalNOK:     15,
			ScrapRate:    7.5,
			QualityRate:  92.5,
			DateRange:    "2024-01-01 to 2024-01-02",
		},
		Machines: map[string]stats.GroupStat{
			"M1": {TotalChecked: 200, TotalNOK: 15, ScrapRate: 7.5, RecordCount: 2},
		},
		Inspectors: map[string]stats.GroupStat{
			"Popescu": {TotalChecked: 200, TotalNOK: 15, ScrapRate: 7.5, RecordCount: 2},
		},
		Parts: map[string]stats.GroupStat{
			"R900305231": {TotalChecked: 100, TotalNOK: 5, ScrapRate: 5, RecordCount: 1},
		},
		Trend: stats.TrendSeries{
			Labels:     []string{"2024-01-01", "2024-01-02"},
			ScrapRates: []float64{5.0, 10.0},
			Volumes:    []float64{100, 100},
		},
		Weekly: []stats.TimeBucket{
			{Key: "2024-W01", Label: "Week 1, 2024 (2024-01-01 - 2024-01-02)", TotalChecked: 200, TotalNOK: 15, ScrapRate: 7.5, QualityRate: 92.5},
		},
		Monthly: []stats.TimeBucket{
			{Key: "2024-01", Label: "January 2024", TotalChecked: 200, TotalNOK: 15, ScrapRate: 7.5, QualityRate: 92.5},
		},
		Daily: []stats.TimeBucket{
			{Key: "2024-01-02", Label: "2024-01-02", TotalChecked: 100, TotalNOK: 10, ScrapRate: 10, QualityRate: 90},
		},
		Categories: stats.CategoryBreakdown{
			Labels: []string{"Control Final"},
			Values: []float64{15},
		},
		Rates:      stats.RateSummary{Days: 2, Mean: 7.5, Median: 7.5, Min: 5, Max: 10, StdDev: 2.5},
		SheetNames: []string{"Control Final"},
	}
}

func TestDashboardExport(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &config.Config{
		Output: config.OutputConfig{Dir: tmpDir, FileName: "dashboard"},
	}

	exporter := NewDashboardExporter()
	if err := exporter.Export(sampleReport(), cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "dashboard.html"))
	if err != nil {
		t.Fatalf("Failed to read dashboard: %v", err)
	}
	page := string(data)

	// KPI values rendered
	for _, want := range []string{"7.50%", "92.50%", "2024-01-01 to 2024-01-02"} {
		if !strings.Contains(page, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	// Chart payloads embedded as JSON
	for _, want := range []string{`"scrap_rates":[5,10]`, `"labels":["Control Final"]`, "R900305231"} {
		if !strings.Contains(page, want) {
			t.Errorf("dashboard missing embedded payload %q", want)
		}
	}

	// Tables rendered
	for _, want := range []string{"Popescu", "Week 1, 2024", "January 2024"} {
		if !strings.Contains(page, want) {
			t.Errorf("dashboard missing table content %q", want)
		}
	}

	t.Logf("✅ Dashboard generated: %d bytes", len(data))
}

func TestSortedRowsOrder(t *testing.T) {
	groups := map[string]stats.GroupStat{
		"A": {ScrapRate: 1.0},
		"B": {ScrapRate: 9.0},
		"C": {ScrapRate: 9.0},
	}

	rows := sortedRows(groups)

	if rows[0].Key != "B" || rows[1].Key != "C" || rows[2].Key != "A" {
		t.Errorf("sortedRows order = %v, want B, C, A", []string{rows[0].Key, rows[1].Key, rows[2].Key})
	}
}
