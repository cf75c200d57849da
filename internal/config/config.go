package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Fields   FieldsConfig   `mapstructure:"fields"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
}

// InputConfig holds workbook input settings
type InputConfig struct {
	File string `mapstructure:"file"` // Path to the CONTROL workbook
}

// SheetsConfig holds per-worksheet ingestion rules
type SheetsConfig struct {
	Skip []string `mapstructure:"skip"` // Reference sheets skipped by exact name

	// HeaderRowOverrides maps a sheet-name marker substring to the
	// 1-based header row for matching sheets. Sheets without a match
	// use row 1. Matching is case-insensitive (viper lowercases map
	// keys read from file).
	HeaderRowOverrides map[string]int `mapstructure:"header_row_overrides"`
}

// FieldsConfig holds the ordered column-name alias lists. Worksheet
// versions disagree on header spelling and language; the first alias
// present in a row wins.
type FieldsConfig struct {
	Date       []string `mapstructure:"date"`
	Machine    []string `mapstructure:"machine"`
	Inspector  []string `mapstructure:"inspector"`
	TotalParts []string `mapstructure:"total_parts"`
	OKParts    []string `mapstructure:"ok_parts"`
	NOKParts   []string `mapstructure:"nok_parts"`
}

// AnalysisConfig holds extraction and aggregation behavior settings
type AnalysisConfig struct {
	Strict     bool `mapstructure:"strict"`      // Log every degraded cell as a warning
	RecentDays int  `mapstructure:"recent_days"` // Window size for the daily rollup
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string   `mapstructure:"dir"`       // Output directory
	FileName string   `mapstructure:"file_name"` // Output file name (without extension)
	Formats  []string `mapstructure:"formats"`   // Default export formats
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	// Determine config file to use
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Set config file
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// Check if it's just a file not found error
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - use defaults
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Input:  ./CONTROL.xlsx")
			fmt.Println("  Output: ./output")
			fmt.Println("==========================================")
		} else {
			// Config file found but has some other error
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Normalize paths
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	// Create output directory if it doesn't exist
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Input defaults - relative path for double-click usability
	v.SetDefault("input.file", "./CONTROL.xlsx")

	// Sheet rules: skip the dropdown reference sheet; defect-log
	// sheets carry a title banner in row 1 and headers in row 2
	v.SetDefault("sheets.skip", []string{"Drop Down List"})
	v.SetDefault("sheets.header_row_overrides", map[string]int{
		"defecte": 2,
	})

	// Column alias lists, highest priority first. These mirror the
	// header variants observed across CONTROL sheet revisions
	v.SetDefault("fields.date", []string{"Data", "Date", "Data/Date"})
	v.SetDefault("fields.machine", []string{"Machine", "Masina"})
	v.SetDefault("fields.inspector", []string{"Controlor", "Inspector"})
	v.SetDefault("fields.total_parts", []string{
		"Cantitate verificata dimensional",
		"Cantitate verificata vizual (procent)",
		"Cantitate verificata vizual",
		"Total parts",
	})
	v.SetDefault("fields.ok_parts", []string{
		"Total parts OK",
		"Piese OK",
		"OK",
	})
	v.SetDefault("fields.nok_parts", []string{
		"SUSPECTE",
		"Suspecte",
		"Total parts NOK",
		"NOK",
	})

	// Analysis defaults
	v.SetDefault("analysis.strict", false)
	v.SetDefault("analysis.recent_days", 14)

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "scrap-rate-dashboard")
	v.SetDefault("output.formats", []string{"html"})
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	// Normalize input file path. The path may be overridden later via
	// flag, so existence is checked in Validate, not here
	if c.Input.File != "" {
		absInput, err := filepath.Abs(c.Input.File)
		if err != nil {
			return fmt.Errorf("failed to resolve input.file: %w", err)
		}
		c.Input.File = absInput
	}

	// Normalize output directory
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// SkipSheet reports whether a worksheet is a pure reference/lookup
// list that contributes no inspection records
func (c *Config) SkipSheet(name string) bool {
	for _, skip := range c.Sheets.Skip {
		if name == skip {
			return true
		}
	}
	return false
}

// HeaderRow returns the 1-based header row for a worksheet. Sheets
// whose name contains an override marker use the configured row;
// everything else has headers on row 1
func (c *Config) HeaderRow(sheetName string) int {
	lower := strings.ToLower(sheetName)
	for marker, row := range c.Sheets.HeaderRowOverrides {
		if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
			return row
		}
	}
	return 1
}

// OutputBase returns the output path without extension; each exporter
// appends its own
func (c *Config) OutputBase() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Check if the input workbook exists
	if c.Input.File == "" {
		return fmt.Errorf("input.file cannot be empty")
	}
	if _, err := os.Stat(c.Input.File); os.IsNotExist(err) {
		return fmt.Errorf("input workbook does not exist: %s", c.Input.File)
	}

	// Check if output filename is not empty
	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	// Every core field needs at least one alias to resolve against
	if len(c.Fields.Date) == 0 || len(c.Fields.TotalParts) == 0 {
		return fmt.Errorf("fields.date and fields.total_parts must contain at least one alias")
	}

	if c.Analysis.RecentDays <= 0 {
		return fmt.Errorf("analysis.recent_days must be positive")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Scrapdash Configuration ===")
	fmt.Printf("Input Workbook:   %s\n", c.Input.File)
	fmt.Printf("Skip Sheets:      %v\n", c.Sheets.Skip)
	fmt.Printf("Header Overrides: %v\n", c.Sheets.HeaderRowOverrides)
	fmt.Printf("Strict Mode:      %v\n", c.Analysis.Strict)
	fmt.Printf("Daily Window:     %d days\n", c.Analysis.RecentDays)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output Base:      %s\n", c.OutputBase())
	fmt.Printf("Formats:          %v\n", c.Output.Formats)
	fmt.Println("===============================")
}
