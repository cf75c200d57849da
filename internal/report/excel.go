package report

import (
	"sort"

	"scrapdash/internal/config"
	"scrapdash/internal/stats"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes the aggregate workbook
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel report
func (e *ExcelExporter) Export(rep *stats.Report, cfg *config.Config) error {
	outputFile := cfg.OutputBase() + ".xlsx"
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writeOverview(f, styler, rep); err != nil {
		return err
	}

	groupSheets := []struct {
		name  string
		label string
		data  map[string]stats.GroupStat
	}{
		{"Machines", "Machine", rep.Machines},
		{"Inspectors", "Inspector", rep.Inspectors},
		{"Part Numbers", "Part Number", rep.Parts},
	}
	for _, gs := range groupSheets {
		if err := e.writeGroupSheet(f, styler, gs.name, gs.label, gs.data); err != nil {
			return err
		}
	}

	if err := e.writeRollupSheet(f, styler, "Weekly", rep.Weekly); err != nil {
		return err
	}
	if err := e.writeRollupSheet(f, styler, "Monthly", rep.Monthly); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	// Save
	if err := f.SaveAs(outputFile); err != nil {
		return err
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, rep *stats.Report) error {
	sheet := "Overview"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	row := 1
	e.writeRow(f, sheet, row, []any{"Metric", "Value"}, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val any
	}{
		{"Source Workbook", rep.SourceFile},
		{"Generated", rep.GeneratedAt},
		{"Date Range", rep.Overview.DateRange},
		{"Total Records", rep.Overview.TotalRecords},
		{"Total Parts Checked", rep.Overview.TotalChecked},
		{"Total OK Parts", rep.Overview.TotalOK},
		{"Total NOK Parts", rep.Overview.TotalNOK},
		{"Overall Scrap Rate (%)", rep.Overview.ScrapRate},
		{"Overall Quality Rate (%)", rep.Overview.QualityRate},
		{"Mean Daily Scrap Rate (%)", rep.Rates.Mean},
		{"Peak Daily Scrap Rate (%)", rep.Rates.Max},
	}

	for _, m := range metrics {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, cellA, m.Key)
		f.SetCellValue(sheet, cellB, m.Val)
		f.SetCellStyle(sheet, cellA, cellA, s.KPIStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 40)

	return nil
}

// writeGroupSheet writes one grouping breakdown, worst scrap rate first
func (e *ExcelExporter) writeGroupSheet(f *excelize.File, s *Styler, sheet, keyLabel string, data map[string]stats.GroupStat) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []any{keyLabel, "Parts Checked", "NOK Parts", "Scrap Rate (%)", "Records"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if data[keys[i]].ScrapRate != data[keys[j]].ScrapRate {
			return data[keys[i]].ScrapRate > data[keys[j]].ScrapRate
		}
		return keys[i] < keys[j]
	})

	row := 2
	for _, k := range keys {
		st := data[k]
		e.writeRow(f, sheet, row, []any{k, st.TotalChecked, st.TotalNOK, st.ScrapRate, st.RecordCount}, s.DefaultStyle)
		rateCell, _ := excelize.CoordinatesToCellName(4, row)
		f.SetCellStyle(sheet, rateCell, rateCell, s.RateStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 32)
	f.SetColWidth(sheet, "B", "E", 16)

	return nil
}

func (e *ExcelExporter) writeRollupSheet(f *excelize.File, s *Styler, sheet string, buckets []stats.TimeBucket) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []any{"Period", "Parts Checked", "OK Parts", "NOK Parts", "Scrap Rate (%)", "Quality Rate (%)"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	row := 2
	for _, b := range buckets {
		e.writeRow(f, sheet, row, []any{b.Label, b.TotalChecked, b.TotalOK, b.TotalNOK, b.ScrapRate, b.QualityRate}, s.DefaultStyle)
		scrapCell, _ := excelize.CoordinatesToCellName(5, row)
		qualityCell, _ := excelize.CoordinatesToCellName(6, row)
		f.SetCellStyle(sheet, scrapCell, scrapCell, s.RateStyle)
		f.SetCellStyle(sheet, qualityCell, qualityCell, s.GoodStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "B", "F", 16)

	return nil
}

// writeRow writes one row of values and applies a base style
func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []any, style int) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		f.SetCellValue(sheet, cell, v)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
