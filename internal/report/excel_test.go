package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrapdash/internal/config"
	"scrapdash/internal/stats"

	"github.com/xuri/excelize/v2"
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
			{Key: "2024-W01", Label: "Week 1, 2024 (2024-01-01 - 2024-01-02)", TotalChecked: 200, TotalOK: 185, TotalNOK: 15, ScrapRate: 7.5, QualityRate: 92.5},
		},
		Monthly: []stats.TimeBucket{
			{Key: "2024-01", Label: "January 2024", TotalChecked: 200, TotalOK: 185, TotalNOK: 15, ScrapRate: 7.5, QualityRate: 92.5},
		},
		Daily: []stats.TimeBucket{
			{Key: "2024-01-01", Label: "2024-01-01", TotalChecked: 100, TotalNOK: 5, ScrapRate: 5, QualityRate: 95},
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

func testOutputConfig(t *testing.T) *config.Config {
	t.Helper()
	tmpDir := t.TempDir()
	return &config.Config{
		Output: config.OutputConfig{Dir: tmpDir, FileName: "test-report"},
	}
}

func TestExcelExport(t *testing.T) {
	cfg := testOutputConfig(t)
	rep := sampleReport()

	exporter := NewExcelExporter()
	if err := exporter.Export(rep, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	outputFile := cfg.OutputBase() + ".xlsx"
	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		t.Fatal("Output file was not created")
	}
	t.Logf("✅ Output file created: %s", outputFile)

	f, err := excelize.OpenFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	// All expected sheets present, default sheet removed
	wantSheets := []string{"Overview", "Machines", "Inspectors", "Part Numbers", "Weekly", "Monthly"}
	got := f.GetSheetList()
	for _, want := range wantSheets {
		found := false
		for _, s := range got {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing sheet %q in %v", want, got)
		}
	}
	for _, s := range got {
		if s == "Sheet1" {
			t.Error("default Sheet1 was not removed")
		}
	}

	// Overall scrap rate lands in the overview
	val, err := f.GetCellValue("Overview", "B9")
	if err != nil {
		t.Fatal(err)
	}
	if val != "7.5" {
		t.Errorf("Overview B9 = %q, want 7.5", val)
	}

	// Machine breakdown row
	machine, _ := f.GetCellValue("Machines", "A2")
	if machine != "M1" {
		t.Errorf("Machines A2 = %q, want M1", machine)
	}
}

func TestJSONExport(t *testing.T) {
	cfg := testOutputConfig(t)
	rep := sampleReport()

	exporter := NewJSONExporter()
	if err := exporter.Export(rep, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "test-report.json"))
	if err != nil {
		t.Fatalf("Failed to read JSON output: %v", err)
	}

	payload := string(data)
	for _, want := range []string{`"scrap_rate": 7.5`, `"M1"`, `"2024-W01"`, `"January 2024"`} {
		if !strings.Contains(payload, want) {
			t.Errorf("JSON output missing %s", want)
		}
	}
}
