package sqlite

import (
	"fmt"
	"math"
	"time"
)

// Calendar.app stores timestamps as seconds counted from the Unix epoch moved
// forward epochYears years. Decoding follows SQLite's
// datetime(x, 'unixepoch', '31 years'): the years are added on the calendar,
// so Feb 29 lands on Mar 1 when the target year isn't a leap year.
const epochYears = 31

// DecodeEnd translates a native end timestamp into its UTC wall clock.
func DecodeEnd(sec float64) time.Time {
	return time.Unix(int64(math.Floor(sec)), 0).UTC().AddDate(epochYears, 0, 0)
}

// DecodeStart translates a native start timestamp into its UTC wall clock.
//
// Start dates are shifted one day further than end dates. Output produced
// from existing databases depends on this, so it must stay asymmetric until
// it is confirmed against Calendar.app itself.
func DecodeStart(sec float64) time.Time {
	return DecodeEnd(sec).AddDate(0, 0, 1)
}

// EncodeEnd is the inverse of DecodeEnd.
func EncodeEnd(t time.Time) float64 {
	return float64(t.UTC().AddDate(-epochYears, 0, 0).Unix())
}

// EncodeStart is the inverse of DecodeStart.
func EncodeStart(t time.Time) float64 {
	return EncodeEnd(t.AddDate(0, 0, -1))
}

// startDateSQL renders the calendar date of DecodeStart(column) in SQL.
func startDateSQL(column string) string {
	return fmt.Sprintf("date(%s, 'unixepoch', '%d years', '1 day')", column, epochYears)
}

// naive returns t's wall clock in UTC, truncated to the second, which is how
// decoded timestamps are represented.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
