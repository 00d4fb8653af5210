// Package calendar has timezone-independent calendar dates and day arithmetic.
package calendar

import (
	"fmt"
	"time"
)

// DayNumber counts days since 1970-01-01 in the proleptic Gregorian calendar.
// Subtracting two DayNumbers yields an exact day count.
type DayNumber int64

// Date is a calendar date with no time-of-day or zone component.
// The zero value is not a valid date; use New, StartOfDay or Parse.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ISOLayout is the layout used by Parse and String.
const ISOLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// New returns the Date for the given triple, normalizing overflow the way
// time.Date does (e.g. February 30 becomes March 1 or 2).
func New(year int, month time.Month, day int) Date {
	return fromUTC(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// StartOfDay drops the time-of-day of t, keeping the wall-clock date in t's own location.
func StartOfDay(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar date.
func Today() Date {
	return StartOfDay(time.Now())
}

// Parse reads an ISO 8601 calendar date (YYYY-MM-DD).
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return StartOfDay(t), nil
}

func fromUTC(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DayNumber maps the date to a fixed-epoch day count. The result depends only
// on the Y/M/D triple, never on time.Local.
func (d Date) DayNumber() DayNumber {
	return DayNumber(floorDiv(d.Time().Unix(), secondsPerDay))
}

// AddDays returns the date n days after d. n may be zero or negative.
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	a, b := d.DayNumber(), o.DayNumber()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
// February 29 only survives construction in a leap year.
func DaysInYear(year int) int {
	if New(year, time.February, 29).Month == time.February {
		return 366
	}
	return 365
}

// EndOfYear returns December 31 of year.
func EndOfYear(year int) Date {
	return Date{Year: year, Month: time.December, Day: 31}
}

// StartOfYear returns January 1 of year.
func StartOfYear(year int) Date {
	return Date{Year: year, Month: time.January, Day: 1}
}

// DaysBetween returns b - a in whole days.
func DaysBetween(a, b Date) int {
	return int(b.DayNumber() - a.DayNumber())
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
