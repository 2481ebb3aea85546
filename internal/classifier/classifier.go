// Package classifier computes per-order fulfillment statuses and
// aggregate counts under the business cutoff policy. It is pure: the
// current instant is always passed in, no clock is read and no state is
// kept between calls, so it is safe to invoke concurrently.
package classifier

import (
	"errors"
	"shipdesk/internal/entity"
	inerr "shipdesk/internal/errors"
	"shipdesk/internal/policy"
	"time"
)

// EffectiveApproval returns the instant an order is considered approved
// for cutoff comparisons: the approval timestamp when it is present and
// strictly later than the creation timestamp, otherwise the creation
// timestamp. Approval timestamps can be missing, stale or precede
// creation due to upstream data quality; creation time is always a safe
// fallback, being the earliest point the order could require action.
func EffectiveApproval(o entity.Order) time.Time {
	if o.ApprovedAt != nil && o.ApprovedAt.After(o.CreatedAt) {
		return *o.ApprovedAt
	}

	return o.CreatedAt
}

// Classify computes the status of every order at the given instant along
// with aggregate counts. On a non-operating day it returns an empty
// report regardless of input: nothing is due while the business is
// closed. Orders without a single valid timestamp are excluded from the
// report and returned as joined MalformedOrderError values; the report
// covers the remaining orders either way.
func Classify(orders []entity.Order, now time.Time) (entity.Report, error) {
	report := entity.Report{PerOrder: map[string]entity.Status{}}
	if policy.IsNonOperatingDay(now) {
		return report, nil
	}

	var errs []error
	for _, o := range orders {
		if malformed(o) {
			errs = append(errs, &inerr.MalformedOrderError{OrderID: o.ID})

			continue
		}

		status, byCutoff := classify(o, now)
		report.PerOrder[o.ID] = status

		switch status {
		case entity.StatusOverdue:
			report.Counts.Overdue++
			// An order overdue under the cutoff rule still has to ship
			// today, so it counts as due today as well. An order whose
			// customer-chosen delivery date has passed does not.
			if byCutoff {
				report.Counts.DueToday++
			}
		case entity.StatusDueToday:
			report.Counts.DueToday++
		case entity.StatusScheduled:
			report.Counts.Scheduled++
		case entity.StatusNewlyApproved:
			report.Counts.NewlyApproved++
		}
	}

	report.Counts.Pending = report.Counts.DueToday + report.Counts.Scheduled + report.Counts.NewlyApproved

	return report, errors.Join(errs...)
}

// IsOverdue reports whether a single order is overdue at the given
// instant. It agrees with Classify for every order and instant: an order
// is overdue here exactly when Classify assigns it StatusOverdue.
func IsOverdue(o entity.Order, now time.Time) bool {
	if policy.IsNonOperatingDay(now) || malformed(o) {
		return false
	}

	status, _ := classify(o, now)

	return status == entity.StatusOverdue
}

func malformed(o entity.Order) bool {
	return o.CreatedAt.IsZero() && (o.ApprovedAt == nil || o.ApprovedAt.IsZero())
}

// classify returns the order's status and whether it was derived from
// the cutoff rule rather than a customer-chosen delivery date. Cutoff
// comparisons are strict: an instant exactly at a cutoff belongs to the
// bucket the cutoff opens.
func classify(o entity.Order, now time.Time) (entity.Status, bool) {
	today := policy.BusinessDate(now)

	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		switch {
		case d.Before(today):
			return entity.StatusOverdue, false
		case d == today:
			if now.After(policy.CutoffAt(today, o.Provincial)) {
				return entity.StatusOverdue, false
			}

			return entity.StatusDueToday, false
		default:
			return entity.StatusScheduled, false
		}
	}

	approval := EffectiveApproval(o)
	switch {
	case approval.Before(policy.CutoffAt(today.AddDays(-1), o.Provincial)):
		return entity.StatusOverdue, true
	case approval.Before(policy.CutoffAt(today, o.Provincial)):
		return entity.StatusDueToday, true
	default:
		return entity.StatusNewlyApproved, true
	}
}
