// Package policy holds the fulfillment timing rules of the business:
// the business timezone, the destination-dependent same-day cutoff hours
// and the non-operating weekday.
package policy

import (
	"shipdesk/internal/entity"
	"time"
)

// Location is the business timezone. Philippine Time is a fixed UTC+8
// offset with no daylight saving, so no IANA lookup is needed.
var Location = time.FixedZone("PHT", 8*60*60)

const (
	// ProvincialCutoffHour is the latest hour an order bound for a
	// provincial destination can be approved and still ship the same
	// day; provincial shipments need an earlier courier handoff.
	ProvincialCutoffHour = 12
	// MetroCutoffHour applies to metro destinations, which are
	// consolidated later in the day.
	MetroCutoffHour = 15
)

// CutoffHour returns the same-day cutoff hour for a destination class.
func CutoffHour(provincial bool) int {
	if provincial {
		return ProvincialCutoffHour
	}

	return MetroCutoffHour
}

// IsNonOperatingDay reports whether the instant falls on a day the
// business does not ship: Sunday in the business timezone.
func IsNonOperatingDay(t time.Time) bool {
	return t.In(Location).Weekday() == time.Sunday
}

// BusinessDate converts an instant to its calendar date in the business
// timezone.
func BusinessDate(t time.Time) entity.Date {
	return entity.DateOf(t, Location)
}

// CutoffAt returns the cutoff instant on the given business date for a
// destination class.
func CutoffAt(d entity.Date, provincial bool) time.Time {
	return time.Date(d.Year, d.Month, d.Day, CutoffHour(provincial), 0, 0, 0, Location)
}
