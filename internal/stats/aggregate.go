package stats

import (
	"math"
	"sort"
	"time"

	"scrapdash/internal/model"
)

// GroupStat is the aggregate for one grouping key (machine, inspector
// or part number). JSON names match the embedded chart payloads.
type GroupStat struct {
	TotalChecked float64 `json:"total_checked"`
	TotalNOK     float64 `json:"total_suspecte"`
	ScrapRate    float64 `json:"scrap_rate"`
	RecordCount  int     `json:"record_count"`
}

// Overview holds the workbook-wide totals.
type Overview struct {
	TotalRecords int     `json:"total_records"`
	TotalChecked float64 `json:"total_checked"`
	TotalOK      float64 `json:"total_ok"`
	TotalNOK     float64 `json:"total_nok"`
	ScrapRate    float64 `json:"scrap_rate"`
	QualityRate  float64 `json:"quality_rate"`
	DateRange    string  `json:"date_range"`
}

// TrendSeries is the chronological scrap-rate series, parallel slices
// as the chart library expects them.
type TrendSeries struct {
	Labels     []string  `json:"labels"`
	ScrapRates []float64 `json:"scrap_rates"`
	Volumes    []float64 `json:"volumes"`
}

// CategoryBreakdown is the per-sheet NOK breakdown, descending.
type CategoryBreakdown struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// TimeBucket is one weekly, monthly or daily rollup row.
type TimeBucket struct {
	Key          string  `json:"key"` // sortable: 2024-W05 / 2024-02 / 2024-02-14
	Label        string  `json:"label"`
	TotalChecked float64 `json:"total_checked"`
	TotalOK      float64 `json:"total_ok"`
	TotalNOK     float64 `json:"total_nok"`
	ScrapRate    float64 `json:"scrap_rate"`
	QualityRate  float64 `json:"quality_rate"`
	FirstDate    string  `json:"first_date,omitempty"`
	LastDate     string  `json:"last_date,omitempty"`
}

// Report bundles every aggregate the renderers consume. Built once,
// read-only afterwards.
type Report struct {
	GeneratedAt string                `json:"generated_at"`
	SourceFile  string                `json:"source_file"`
	Overview    Overview              `json:"overview"`
	Machines    map[string]GroupStat  `json:"machines"`
	Inspectors  map[string]GroupStat  `json:"inspectors"`
	Parts       map[string]GroupStat  `json:"parts"`
	Trend       TrendSeries           `json:"trend"`
	Weekly      []TimeBucket          `json:"weekly"`
	Monthly     []TimeBucket          `json:"monthly"`
	Daily       []TimeBucket          `json:"daily"`
	Categories  CategoryBreakdown     `json:"categories"`
	Rates       RateSummary           `json:"rate_summary"`
	SheetNames  []string              `json:"sheet_names"`
}

// Aggregate computes every report aggregate from a Dataset. Pure with
// respect to the dataset: nothing in ds is mutated.
func Aggregate(ds *model.Dataset, sourceFile string, recentDays int) *Report {
	rep := &Report{
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		SourceFile:  sourceFile,
		Overview:    calcOverview(ds),
		Machines:    calcGroupStats(ds.ByMachine),
		Inspectors:  calcGroupStats(ds.ByInspector),
		Parts:       calcGroupStats(ds.ByPart),
		Trend:       calcTrend(ds),
		Weekly:      calcWeekly(ds),
		Monthly:     calcMonthly(ds),
		Daily:       calcDaily(ds, recentDays),
		Categories:  calcCategories(ds),
		SheetNames:  ds.SheetNames,
	}
	rep.Rates = calcRateSummary(rep.Trend.ScrapRates)
	return rep
}

// effectiveOK returns the conforming count for a record. Sheets
// without an OK column report only checked quantity and suspects,
// so OK falls back to total minus NOK.
func effectiveOK(r *model.Record) float64 {
	if r.HasOK {
		return r.OKParts
	}
	if r.HasTotal {
		return r.TotalParts - r.NOKParts
	}
	return 0
}

func calcOverview(ds *model.Dataset) Overview {
	o := Overview{TotalRecords: len(ds.Records)}

	for _, r := range ds.Records {
		if r.HasTotal {
			o.TotalChecked += r.TotalParts
		}
		o.TotalOK += effectiveOK(r)
		o.TotalNOK += r.NOKParts
	}

	o.ScrapRate = safeRate(o.TotalNOK, o.TotalChecked)
	o.QualityRate = safeRate(o.TotalOK, o.TotalChecked)

	dates := make([]string, 0, len(ds.ByDate))
	for d := range ds.ByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > 0 {
		o.DateRange = dates[0] + " to " + dates[len(dates)-1]
	} else {
		o.DateRange = "Unknown"
	}

	return o
}

// calcGroupStats aggregates one grouping index. Keys with zero checked
// quantity still report a zero scrap rate, never an error.
func calcGroupStats(index map[string][]*model.Record) map[string]GroupStat {
	out := make(map[string]GroupStat, len(index))
	for key, records := range index {
		var checked, nok float64
		for _, r := range records {
			if r.HasTotal {
				checked += r.TotalParts
			}
			nok += r.NOKParts
		}
		out[key] = GroupStat{
			TotalChecked: checked,
			TotalNOK:     nok,
			ScrapRate:    safeRate(nok, checked),
			RecordCount:  len(records),
		}
	}
	return out
}

// calcTrend walks distinct dates ascending and emits a point per date
// with positive checked volume. Zero-volume dates are omitted.
func calcTrend(ds *model.Dataset) TrendSeries {
	trend := TrendSeries{
		Labels:     []string{},
		ScrapRates: []float64{},
		Volumes:    []float64{},
	}

	dates := make([]string, 0, len(ds.ByDate))
	for d := range ds.ByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		var checked, nok float64
		for _, r := range ds.ByDate[date] {
			if r.HasTotal {
				checked += r.TotalParts
			}
			nok += r.NOKParts
		}
		if checked <= 0 {
			continue
		}
		trend.Labels = append(trend.Labels, date)
		trend.ScrapRates = append(trend.ScrapRates, round2(nok/checked*100))
		trend.Volumes = append(trend.Volumes, checked)
	}

	return trend
}

// calcCategories sums NOK per source sheet, sorted descending. Ties
// keep first-encounter order of the sheet in the record list.
func calcCategories(ds *model.Dataset) CategoryBreakdown {
	sums := make(map[string]float64)
	order := []string{}

	for _, r := range ds.Records {
		if _, seen := sums[r.Sheet]; !seen {
			order = append(order, r.Sheet)
		}
		sums[r.Sheet] += r.NOKParts
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]] > sums[order[j]]
	})

	breakdown := CategoryBreakdown{Labels: []string{}, Values: []float64{}}
	for _, sheet := range order {
		breakdown.Labels = append(breakdown.Labels, sheet)
		breakdown.Values = append(breakdown.Values, sums[sheet])
	}
	return breakdown
}

// safeRate is numerator/denominator*100 rounded to two decimals,
// zero when the denominator is zero. Never NaN, never a panic.
func safeRate(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return round2(num / den * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
