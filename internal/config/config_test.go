package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// Load config without a file (should use defaults)
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	// Verify defaults
	if cfg.Input.File == "" {
		t.Error("Expected Input.File to be set")
	}

	if cfg.Output.Dir == "" {
		t.Error("Expected Output.Dir to be set")
	}

	if cfg.Output.FileName == "" {
		t.Error("Expected Output.FileName to be set")
	}

	if len(cfg.Fields.Date) == 0 {
		t.Error("Expected at least one date alias")
	}

	if len(cfg.Fields.TotalParts) == 0 {
		t.Error("Expected at least one total-parts alias")
	}

	if cfg.Analysis.RecentDays != 14 {
		t.Errorf("Expected recent_days default 14, got %d", cfg.Analysis.RecentDays)
	}

	t.Logf("Config loaded successfully with defaults")
	cfg.Print()
}

func TestSkipSheet(t *testing.T) {
	cfg := &Config{
		Sheets: SheetsConfig{
			Skip: []string{"Drop Down List"},
		},
	}

	tests := []struct {
		sheet    string
		expected bool
	}{
		{"Drop Down List", true},
		{"Control Final", false},
		{"drop down list", false}, // skip match is exact
	}

	for _, tt := range tests {
		if got := cfg.SkipSheet(tt.sheet); got != tt.expected {
			t.Errorf("SkipSheet(%q) = %v, want %v", tt.sheet, got, tt.expected)
		}
	}
}

func TestHeaderRow(t *testing.T) {
	cfg := &Config{
		Sheets: SheetsConfig{
			HeaderRowOverrides: map[string]int{"defecte": 2},
		},
	}

	tests := []struct {
		sheet    string
		expected int
	}{
		{"Control Final", 1},
		{"Defecte Vizuale", 2},
		{"Registru DEFECTE 2024", 2},
		{"Defect Summary", 1}, // marker is "defecte", not a prefix match
	}

	for _, tt := range tests {
		if got := cfg.HeaderRow(tt.sheet); got != tt.expected {
			t.Errorf("HeaderRow(%q) = %d, want %d", tt.sheet, got, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "scrapdash-config-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	workbook := filepath.Join(tmpDir, "CONTROL.xlsx")
	if err := os.WriteFile(workbook, []byte("stub"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		Input: InputConfig{File: workbook},
		Fields: FieldsConfig{
			Date:       []string{"Data"},
			TotalParts: []string{"Total parts"},
		},
		Analysis: AnalysisConfig{RecentDays: 14},
		Output:   OutputConfig{Dir: tmpDir, FileName: "report"},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Input.File = filepath.Join(tmpDir, "missing.xlsx")
	if err := cfg.Validate(); err == nil {
		t.Error("missing workbook accepted")
	}

	cfg.Input.File = workbook
	cfg.Output.FileName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty output file name accepted")
	}
}

func TestOutputBase(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Dir: "/tmp/out", FileName: "scrap-rate-dashboard"},
	}

	want := filepath.Join("/tmp/out", "scrap-rate-dashboard")
	if got := cfg.OutputBase(); got != want {
		t.Errorf("OutputBase() = %q, want %q", got, want)
	}
}

func TestEnsureOutputDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{Output: OutputConfig{Dir: filepath.Join(tmpDir, "reports")}}
	if err := cfg.EnsureOutputDir(); err != nil {
		t.Fatalf("EnsureOutputDir failed: %v", err)
	}
	if info, err := os.Stat(cfg.Output.Dir); err != nil || !info.IsDir() {
		t.Error("output directory was not created")
	}

	// A path blocked by a regular file must surface an error
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Output.Dir = filepath.Join(blocker, "reports")
	if err := cfg.EnsureOutputDir(); err == nil {
		t.Error("expected an error when the output path is blocked by a file")
	}
}
