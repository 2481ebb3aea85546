package entity

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. Delivery dates are
// date-only values interpreted in the business timezone, so they are
// kept apart from time.Time instants.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of an instant in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()

	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}

	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}, nil
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()

	return Date{Year: y, Month: m, Day: day}
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}

	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}

	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
