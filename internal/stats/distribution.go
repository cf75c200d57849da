package stats

import (
	"github.com/montanaflynn/stats"
)

// RateSummary describes the distribution of daily scrap rates over
// the trend series, for the dashboard KPI strip and the Word summary.
type RateSummary struct {
	Days   int     `json:"days"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// calcRateSummary computes distribution statistics over the daily
// scrap rates. An empty series yields the zero summary; the stats
// library errors on empty input and every value falls back to 0.
func calcRateSummary(rates []float64) RateSummary {
	s := RateSummary{Days: len(rates)}
	if len(rates) == 0 {
		return s
	}

	if mean, err := stats.Mean(rates); err == nil {
		s.Mean = round2(mean)
	}
	if median, err := stats.Median(rates); err == nil {
		s.Median = round2(median)
	}
	if min, err := stats.Min(rates); err == nil {
		s.Min = round2(min)
	}
	if max, err := stats.Max(rates); err == nil {
		s.Max = round2(max)
	}
	if sd, err := stats.StandardDeviation(rates); err == nil {
		s.StdDev = round2(sd)
	}

	return s
}
