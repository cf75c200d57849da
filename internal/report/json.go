package report

import (
	"encoding/json"
	"fmt"
	"os"

	"scrapdash/internal/config"
	"scrapdash/internal/stats"
)

// JSONExporter writes the full aggregate payload as a machine-readable
// file, for downstream tooling that wants the numbers without the
// dashboard around them
type JSONExporter struct {
	// Stateless
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(rep *stats.Report, cfg *config.Config) error {
	outputFile := cfg.OutputBase() + ".json"

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	return nil
}
