package stats

import (
	"fmt"
	"sort"
	"time"

	"scrapdash/internal/model"
)

// weekOfYear is the simplified week number used by the rollups:
// seven-day blocks counted from January 1st. Deliberately not
// ISO-8601 week numbering; the historical reports used this
// derivation and ISO would renumber year-boundary weeks.
func weekOfYear(t time.Time) int {
	return (t.YearDay()-1)/7 + 1
}

type bucketAccum struct {
	key       string
	label     string
	checked   float64
	ok        float64
	nok       float64
	firstDate string
	lastDate  string
}

// calcWeekly buckets records by (year, simplified week). Records with
// an unparseable date are skipped silently. Newest bucket first.
func calcWeekly(ds *model.Dataset) []TimeBucket {
	buckets := make(map[string]*bucketAccum)

	for _, r := range ds.Records {
		t, ok := recordTime(r)
		if !ok {
			continue
		}
		week := weekOfYear(t)
		key := fmt.Sprintf("%04d-W%02d", t.Year(), week)

		b := buckets[key]
		if b == nil {
			b = &bucketAccum{key: key}
			buckets[key] = b
		}
		accumulate(b, r)

		date := r.Date
		if b.firstDate == "" || date < b.firstDate {
			b.firstDate = date
		}
		if date > b.lastDate {
			b.lastDate = date
		}
		b.label = fmt.Sprintf("Week %d, %d (%s - %s)", week, t.Year(), b.firstDate, b.lastDate)
	}

	return finishBuckets(buckets, false)
}

// calcMonthly buckets records by (year, month). Newest bucket first.
func calcMonthly(ds *model.Dataset) []TimeBucket {
	buckets := make(map[string]*bucketAccum)

	for _, r := range ds.Records {
		t, ok := recordTime(r)
		if !ok {
			continue
		}
		key := t.Format("2006-01")

		b := buckets[key]
		if b == nil {
			b = &bucketAccum{
				key:   key,
				label: fmt.Sprintf("%s %d", t.Month().String(), t.Year()),
			}
			buckets[key] = b
		}
		accumulate(b, r)
	}

	return finishBuckets(buckets, false)
}

// calcDaily rolls up the most recent `days` calendar days relative to
// the latest date present in the dataset. Days with zero checked
// volume are omitted. Ordered oldest first, for chart display.
func calcDaily(ds *model.Dataset, days int) []TimeBucket {
	if len(ds.ByDate) == 0 || days <= 0 {
		return []TimeBucket{}
	}

	dates := make([]string, 0, len(ds.ByDate))
	for d := range ds.ByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	latest, err := time.Parse("2006-01-02", dates[len(dates)-1])
	if err != nil {
		return []TimeBucket{}
	}
	windowStart := latest.AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	buckets := make(map[string]*bucketAccum)
	for _, date := range dates {
		if date < windowStart {
			continue
		}
		b := &bucketAccum{key: date, label: date, firstDate: date, lastDate: date}
		for _, r := range ds.ByDate[date] {
			accumulate(b, r)
		}
		if b.checked > 0 {
			buckets[date] = b
		}
	}

	return finishBuckets(buckets, true)
}

func recordTime(r *model.Record) (time.Time, bool) {
	if r.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func accumulate(b *bucketAccum, r *model.Record) {
	if r.HasTotal {
		b.checked += r.TotalParts
	}
	b.ok += effectiveOK(r)
	b.nok += r.NOKParts
}

// finishBuckets converts accumulators to sorted TimeBuckets.
// ascending=false yields newest-first (weekly/monthly); ascending=true
// yields oldest-first (daily window).
func finishBuckets(buckets map[string]*bucketAccum, ascending bool) []TimeBucket {
	out := make([]TimeBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, TimeBucket{
			Key:          b.key,
			Label:        b.label,
			TotalChecked: b.checked,
			TotalOK:      b.ok,
			TotalNOK:     b.nok,
			ScrapRate:    safeRate(b.nok, b.checked),
			QualityRate:  safeRate(b.ok, b.checked),
			FirstDate:    b.firstDate,
			LastDate:     b.lastDate,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].Key < out[j].Key
		}
		return out[i].Key > out[j].Key
	})
	return out
}
