// Package calendar supplies the Jalali (Persian) calendar dates the
// reminder evaluator compares against.
//
// All date math here is on the Jalali calendar, not the Gregorian one:
// month lengths are 31/31/31/31/31/31/30/30/30/30/30/29-or-30 and the
// year rolls over at Nowruz, around the 20th–21st of March. Getting
// "today + 7 days" right across the Esfand → Farvardin boundary is the
// whole reason this package exists; a naive day-of-month wrap would
// report the wrong date there.
//
// The conversion itself is delegated to go-persian-calendar (the Go
// counterpart of the persian-date library): day arithmetic happens in
// absolute time with time.Time.AddDate, and only the result is
// converted, so rollover is correct by construction.
package calendar

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Date is one Jalali calendar date. Year is carried for display; the
// reminder evaluator compares only (Month, Day) because birthdays recur
// every year.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Targets are the three dates a single evaluation pass compares records
// against, in priority order.
type Targets struct {
	Today    Date
	Tomorrow Date
	NextWeek Date
}

// At returns the Jalali date of the given instant, in the instant's
// location. Callers that want Tehran-local days should convert the
// instant first.
func At(t time.Time) Date {
	pt := ptime.New(t)
	return Date{
		Year:  pt.Year(),
		Month: int(pt.Month()),
		Day:   pt.Day(),
	}
}

// TargetsAt computes today, today+1 day, and today+7 days as Jalali
// dates. Adding days on the time.Time side before converting keeps
// month and year rollover exact — including the year boundary, where
// Esfand has 29 or 30 days depending on the leap cycle.
func TargetsAt(now time.Time) Targets {
	return Targets{
		Today:    At(now),
		Tomorrow: At(now.AddDate(0, 0, 1)),
		NextWeek: At(now.AddDate(0, 0, 7)),
	}
}

// MonthName returns the transliterated Persian name of a Jalali month
// (1 = Farvardin … 12 = Esfand). Out-of-range values fall back to an
// empty string rather than panicking — display code feeds it raw record
// fields.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return ptime.Month(m).String()
}
