package extract

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"scrapdash/internal/config"
	"scrapdash/internal/logger"
	"scrapdash/internal/model"
	"scrapdash/internal/ui"

	"github.com/xuri/excelize/v2"
)

// ErrNoRecords is returned by callers when a workbook parses cleanly
// but yields zero usable inspection records.
var ErrNoRecords = errors.New("no inspection records could be extracted from the workbook")

// Ingestor turns a CONTROL workbook into a Dataset. All per-cell and
// per-row faults degrade locally; only workbook-level I/O errors
// propagate.
type Ingestor struct {
	cfg *config.Config
}

// NewIngestor creates an Ingestor bound to the given configuration.
func NewIngestor(cfg *config.Config) *Ingestor {
	return &Ingestor{cfg: cfg}
}

// IngestFile opens the workbook at path and extracts all worksheets.
func (ing *Ingestor) IngestFile(path string, bar *ui.ProgressBar) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return ing.Ingest(f, bar)
}

// Ingest extracts every worksheet of an open workbook into a Dataset.
// Returns ErrNoRecords (with the partial Dataset, sheet inventory
// included) when no sheet yields a usable record. The progress bar may
// be nil (tests run without UI).
func (ing *Ingestor) Ingest(f *excelize.File, bar *ui.ProgressBar) (*model.Dataset, error) {
	ds := model.NewDataset()

	sheets := f.GetSheetList()
	if bar != nil {
		bar.SetTotal(len(sheets))
	}

	for _, name := range sheets {
		ds.SheetNames = append(ds.SheetNames, name)

		if ing.cfg.SkipSheet(name) {
			logger.Debug("Skipping reference sheet: %s", name)
			if bar != nil {
				bar.Increment()
			}
			continue
		}

		count := ing.ingestSheet(f, name, ds)
		logger.Debug("Extracted %d records from sheet %s", count, name)

		if bar != nil {
			bar.Increment()
		}
	}

	logger.Info("Extracted %d records across %d sheets (%d dates, %d machines, %d inspectors, %d part numbers)",
		len(ds.Records), len(sheets), len(ds.ByDate), len(ds.ByMachine), len(ds.ByInspector), len(ds.ByPart))

	if len(ds.Records) == 0 {
		return ds, ErrNoRecords
	}
	return ds, nil
}

// ingestSheet extracts one worksheet. A sheet with no header row or no
// data rows contributes nothing; it never aborts the run.
func (ing *Ingestor) ingestSheet(f *excelize.File, sheet string, ds *model.Dataset) int {
	rows, err := f.GetRows(sheet)
	if err != nil {
		logger.Warn("Failed to read sheet %s: %v", sheet, err)
		return 0
	}

	headerRow := ing.cfg.HeaderRow(sheet)
	if len(rows) < headerRow {
		return 0
	}

	// Data rows can be wider than the header row; size the header
	// slice to the widest row so trailing columns stay addressable
	width := len(rows[headerRow-1])
	for i := headerRow; i < len(rows); i++ {
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	headers := buildHeaders(rows[headerRow-1], width)
	if len(headers) == 0 {
		return 0
	}

	count := 0
	for i := headerRow; i < len(rows); i++ {
		rec, ok := ing.buildRecord(sheet, headers, rows[i], i+1)
		if !ok {
			continue
		}
		ds.Add(rec)
		count++
	}
	return count
}

// buildHeaders trims header labels left to right, padded out to width
// columns. Blank or missing header cells get a positional Column_N
// placeholder so every column stays addressable.
func buildHeaders(headerCells []string, width int) []string {
	if width < len(headerCells) {
		width = len(headerCells)
	}
	headers := make([]string, width)
	for i := 0; i < width; i++ {
		label := ""
		if i < len(headerCells) {
			label = strings.TrimSpace(headerCells[i])
		}
		if label == "" {
			label = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = label
	}
	return headers
}

// buildRecord maps one worksheet row onto a Record and derives its
// fields. Returns false when every cell is blank after trimming.
func (ing *Ingestor) buildRecord(sheet string, headers []string, row []string, rowNum int) (*model.Record, bool) {
	fields := make(map[string]any)
	for ci, header := range headers {
		if ci >= len(row) {
			break
		}
		if strings.TrimSpace(row[ci]) == "" {
			continue
		}
		fields[header] = row[ci]
	}
	if len(fields) == 0 {
		return nil, false
	}

	rec := &model.Record{Sheet: sheet, Fields: fields}

	// Date: a resolvable column that fails to parse degrades to an
	// unset date; the record stays in the flat list either way
	if raw, ok := Resolve(fields, ing.cfg.Fields.Date); ok {
		if d, parsed := Date(raw); parsed {
			rec.Date = d
		} else {
			ing.degrade(sheet, rowNum, "date", fmt.Sprintf("unparseable date %q", raw))
		}
	}

	rec.Machine, _ = ResolveString(fields, ing.cfg.Fields.Machine)
	rec.Inspector, _ = ResolveString(fields, ing.cfg.Fields.Inspector)

	if raw, ok := Resolve(fields, ing.cfg.Fields.TotalParts); ok {
		if n, parsed := Number(raw); parsed {
			rec.TotalParts = n
			rec.HasTotal = true
		} else {
			ing.degrade(sheet, rowNum, "total parts", fmt.Sprintf("non-numeric %q", raw))
		}
	}

	if raw, ok := Resolve(fields, ing.cfg.Fields.OKParts); ok {
		if n, parsed := Number(raw); parsed {
			rec.OKParts = n
			rec.HasOK = true
		} else {
			ing.degrade(sheet, rowNum, "OK parts", fmt.Sprintf("non-numeric %q", raw))
		}
	}

	// NOK derivation: explicit NOK column wins, else total minus OK
	// when both are known, else zero
	nokSet := false
	if raw, ok := Resolve(fields, ing.cfg.Fields.NOKParts); ok {
		if n, parsed := Number(raw); parsed {
			rec.NOKParts = n
			nokSet = true
		} else {
			ing.degrade(sheet, rowNum, "NOK parts", fmt.Sprintf("non-numeric %q", raw))
		}
	}
	if !nokSet && rec.HasTotal && rec.HasOK {
		rec.NOKParts = rec.TotalParts - rec.OKParts
	}

	if rec.HasTotal && rec.TotalParts > 0 {
		rec.ScrapRate = Round2(rec.NOKParts / rec.TotalParts * 100)
		rec.HasScrapRate = true
	}

	rec.PartNumbers = PartNumbers(fields)

	return rec, true
}

// degrade records a cell-level data-quality issue. Strict mode
// surfaces it on the console; lenient mode keeps it in the log file.
func (ing *Ingestor) degrade(sheet string, rowNum int, column, detail string) {
	if ing.cfg.Analysis.Strict {
		logger.Warn("Sheet %s row %d: %s (%s)", sheet, rowNum, detail, column)
		return
	}
	logger.LogCellError(sheet, rowNum, column, detail)
}

// Round2 rounds to two decimal places, the precision every reported
// rate uses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
