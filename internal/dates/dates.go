package dates

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when an input does not name a real calendar day
// in the YYYYMMDD wire format.
var ErrInvalidDate = errors.New("invalid date format, must be YYYYMMDD")

// ErrInvalidMonth is returned when an input does not name a month in the
// YYYYMM wire format.
var ErrInvalidMonth = errors.New("invalid month format, must be YYYYMM")

// Date is a day-precision calendar date. The zero value is not a valid date;
// obtain one via Parse, FirstDay or LastDay. Date is comparable and usable as
// a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse accepts exactly YYYYMMDD: eight ASCII digits naming a real Gregorian
// day, leap years included. Anything else fails with ErrInvalidDate.
func Parse(s string) (Date, error) {
	if len(s) != 8 || !allDigits(s) {
		return Date{}, ErrInvalidDate
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// ParseMonth accepts exactly YYYYMM with month 01-12.
func ParseMonth(s string) (year int, month time.Month, err error) {
	if len(s) != 6 || !allDigits(s) {
		return 0, 0, ErrInvalidMonth
	}
	t, err := time.Parse("200601", s)
	if err != nil {
		return 0, 0, ErrInvalidMonth
	}
	return t.Year(), t.Month(), nil
}

func allDigits(s string) bool {
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// DaysInMonth returns the number of days in the given month, standard
// Gregorian rules including leap-year February.
func DaysInMonth(year int, month time.Month) int {
	// day zero of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDay returns the first day of the month.
func FirstDay(year int, month time.Month) Date {
	return Date{Year: year, Month: month, Day: 1}
}

// LastDay returns the last day of the month.
func LastDay(year int, month time.Month) Date {
	return Date{Year: year, Month: month, Day: DaysInMonth(year, month)}
}

// String renders back to the YYYYMMDD wire format.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 as d sorts before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Next returns the following calendar day, rolling over month and year ends.
func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}
