package report

import (
	"scrapdash/internal/config"
	"scrapdash/internal/stats"
)

// Exporter is the unified interface for all reporting strategies
type Exporter interface {
	Export(rep *stats.Report, cfg *config.Config) error
}
