package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// dateLayouts are tried in order. DD/MM is deliberately tried before
// MM/DD, so an ambiguous value like "03/04/2024" parses as 3 April.
// This matches the historical behavior of the CONTROL sheets; changing
// the priority would silently reinterpret existing reports.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
}

// Number converts a raw cell value to a float64. Numeric types pass
// through; strings have thousands separators stripped and the first
// contiguous numeric run extracted. Returns false when the value
// carries no usable number. Total: never panics, any input is accepted.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.ReplaceAll(n, ",", "")
		match := numberPattern.FindString(s)
		if match == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Date normalizes a raw cell value to a YYYY-MM-DD string. Native
// time values are formatted directly; strings are trimmed and matched
// against the supported layouts in priority order. A bare numeric in
// the Excel serial range is interpreted through the workbook epoch,
// which covers raw reads of date-styled cells. Returns false for
// anything else.
func Date(v any) (string, bool) {
	switch d := v.(type) {
	case nil:
		return "", false
	case time.Time:
		return d.Format("2006-01-02"), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return "", false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02"), true
			}
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialDate(serial)
		}
		return "", false
	case float64:
		return serialDate(d)
	case int:
		return serialDate(float64(d))
	}
	return "", false
}

// serialDate converts an Excel serial number to a calendar date.
// Only serials in a plausible production window (1954..2119) are
// accepted; bare years like "2024" or stray counts must not turn
// into nonsense dates.
func serialDate(serial float64) (string, bool) {
	if serial < 20000 || serial > 80000 {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
