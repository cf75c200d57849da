package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scrapdash/internal/config"
	"scrapdash/internal/extract"
	"scrapdash/internal/logger"
	"scrapdash/internal/report"
	"scrapdash/internal/stats"
	"scrapdash/internal/ui"
)

const (
	appName    = "Scrapdash"
	appVersion = "1.0.0"
	appDesc    = "Scrap-rate BI dashboard generator for CONTROL quality workbooks"
)

var (
	configPath  string
	inputPath   string
	verbose     bool
	showVersion bool
	outputDir   string
	formats     string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.StringVar(&inputPath, "input", "", "Path to the CONTROL workbook (overrides config)")
	flag.StringVar(&inputPath, "i", "", "Path to the CONTROL workbook (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated output formats (html,excel,word,json)")
}

func main() {
	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	// Run the actual application logic
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	// Workbook path: flag wins, then a bare positional argument
	// (drag-and-drop onto the binary), then the config value
	if inputPath == "" && flag.NArg() > 0 {
		inputPath = flag.Arg(0)
	}
	if inputPath != "" {
		abs, err := filepath.Abs(inputPath)
		if err != nil {
			fmt.Printf("❌ Invalid input path: %v\n", err)
			return 1
		}
		cfg.Input.File = abs
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
		if err := cfg.EnsureOutputDir(); err != nil {
			fmt.Printf("❌ Failed to create output directory: %v\n", err)
			return 1
		}
	}
	if formats != "" {
		cfg.Output.Formats = strings.Split(formats, ",")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ %v\n", err)
		fmt.Println("   Select your CONTROL.xlsx with -input <path> or drop it next to the binary.")
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "scrapdash.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := runDashboard(cfg); err != nil {
		logger.Error("Dashboard generation failed: %v", err)
		return 1
	}

	logger.Info("✅ Dashboard Complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runDashboard(cfg *config.Config) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseExtracting,
		ui.PhaseAggregating,
		ui.PhaseGenerating,
	})

	// --- Phase 1: Extraction ---
	logger.Info("Phase 1: Extracting workbook data...")
	extractBar := pipeline.NextPhase(1)

	ingestor := extract.NewIngestor(cfg)
	ds, err := ingestor.IngestFile(cfg.Input.File, extractBar)
	if err != nil {
		return err
	}
	extractBar.Finish()

	// --- Phase 2: Aggregation ---
	logger.Info("Phase 2: Aggregating statistics...")
	aggBar := pipeline.NextPhase(1)

	rep := stats.Aggregate(ds, cfg.Input.File, cfg.Analysis.RecentDays)
	aggBar.Finish()

	logger.Info("Aggregated: %d machines, %d inspectors, %d part numbers, %d trend points",
		len(rep.Machines), len(rep.Inspectors), len(rep.Parts), len(rep.Trend.Labels))

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating reports...")
	exporters := report.GetExporters(cfg.Output.Formats)
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(rep, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()

	pipeline.Finish()

	// Return error if any exports failed
	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                     SCRAPDASH v1.0.0                      ║
║       Scrap Rate BI Dashboard for CONTROL Workbooks       ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
