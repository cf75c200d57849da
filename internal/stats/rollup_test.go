package stats

import (
	"strings"
	"testing"
	"time"
)

func TestWeekOfYearSimplified(t *testing.T) {
	tests := []struct {
		date string
		week int
	}{
		{"2024-01-01", 1},
		{"2024-01-07", 1},
		{"2024-01-08", 2},
		{"2024-12-31", 53},
	}

	for _, tt := range tests {
		tm, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := weekOfYear(tm); got != tt.week {
			t.Errorf("weekOfYear(%s) = %d, want %d", tt.date, got, tt.week)
		}
	}
}

func TestWeeklyRollup(t *testing.T) {
	ds := datasetOf(
		record("S1", "2024-01-01", "M1", 100, 95, 5, true, true),
		record("S1", "2024-01-03", "M1", 100, 90, 10, true, true),
		record("S1", "2024-01-10", "M1", 200, 200, 0, true, true), // week 2
		record("S1", "", "M1", 100, 0, 100, true, false),          // no date, skipped
	)

	weekly := calcWeekly(ds)

	if len(weekly) != 2 {
		t.Fatalf("weekly buckets = %d, want 2", len(weekly))
	}

	// Newest first
	if weekly[0].Key != "2024-W02" || weekly[1].Key != "2024-W01" {
		t.Errorf("weekly order = %s, %s, want 2024-W02 first", weekly[0].Key, weekly[1].Key)
	}

	w1 := weekly[1]
	if w1.TotalChecked != 200 || w1.TotalNOK != 15 || w1.ScrapRate != 7.5 {
		t.Errorf("week 1 = %+v, want 200 checked, 15 NOK, 7.5%%", w1)
	}
	if w1.FirstDate != "2024-01-01" || w1.LastDate != "2024-01-03" {
		t.Errorf("week 1 span = %s..%s, want 2024-01-01..2024-01-03", w1.FirstDate, w1.LastDate)
	}
	if !strings.Contains(w1.Label, "Week 1, 2024") || !strings.Contains(w1.Label, "2024-01-03") {
		t.Errorf("week 1 label = %q, want week number and date span", w1.Label)
	}
}

func TestMonthlyRollup(t *testing.T) {
	ds := datasetOf(
		record("S1", "2024-01-15", "M1", 100, 95, 5, true, true),
		record("S1", "2024-02-01", "M1", 100, 90, 10, true, true),
	)

	monthly := calcMonthly(ds)

	if len(monthly) != 2 {
		t.Fatalf("monthly buckets = %d, want 2", len(monthly))
	}
	if monthly[0].Key != "2024-02" {
		t.Errorf("monthly order = %s first, want 2024-02 (newest first)", monthly[0].Key)
	}
	if monthly[1].Label != "January 2024" {
		t.Errorf("monthly label = %q, want January 2024", monthly[1].Label)
	}
	if monthly[1].QualityRate != 95.0 {
		t.Errorf("January quality rate = %v, want 95.0", monthly[1].QualityRate)
	}
}

func TestDailyWindowBounded(t *testing.T) {
	ds := datasetOf(
		record("S1", "2024-01-01", "M1", 100, 95, 5, true, true), // outside the window
		record("S1", "2024-03-01", "M1", 100, 95, 5, true, true),
		record("S1", "2024-03-10", "M1", 100, 90, 10, true, true),
		record("S1", "2024-03-14", "M1", 100, 80, 20, true, true), // latest
	)

	daily := calcDaily(ds, 14)

	// Window is 2024-03-01..2024-03-14 relative to the latest date
	if len(daily) != 3 {
		t.Fatalf("daily buckets = %d, want 3", len(daily))
	}

	// Oldest first, unlike the weekly/monthly rollups
	if daily[0].Key != "2024-03-01" || daily[2].Key != "2024-03-14" {
		t.Errorf("daily order = %s..%s, want ascending from 2024-03-01", daily[0].Key, daily[2].Key)
	}
	if daily[2].ScrapRate != 20.0 {
		t.Errorf("latest day scrap rate = %v, want 20.0", daily[2].ScrapRate)
	}
}

func TestDailyWindowEmptyDataset(t *testing.T) {
	daily := calcDaily(datasetOf(), 14)
	if len(daily) != 0 {
		t.Errorf("daily on empty dataset = %d buckets, want 0", len(daily))
	}
}
