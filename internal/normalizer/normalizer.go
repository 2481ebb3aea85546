// Package normalizer maps raw orders from the order API into the shape
// the classification engine consumes.
package normalizer

import (
	"fmt"
	"shipdesk/internal/entity"
	inerr "shipdesk/internal/errors"
	"time"
)

const (
	regionMetro      = "metro"
	regionProvincial = "provincial"
)

// Normalize parses a raw order's timestamps and destination class.
// Orders carrying neither a valid creation nor approval timestamp cannot
// be classified and are rejected with MalformedOrderError.
func Normalize(raw entity.RawOrder) (entity.Order, error) {
	o := entity.Order{ID: raw.ID}

	switch raw.ShippingRegion {
	case regionProvincial:
		o.Provincial = true
	case regionMetro:
	default:
		return entity.Order{}, fmt.Errorf("order %s: %w: %q", raw.ID, inerr.ErrUnknownRegion, raw.ShippingRegion)
	}

	if raw.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, raw.CreatedAt)
		if err != nil {
			return entity.Order{}, fmt.Errorf("order %s: created_at: %w", raw.ID, err)
		}

		o.CreatedAt = t.UTC()
	}

	if raw.ApprovedAt != "" {
		t, err := time.Parse(time.RFC3339, raw.ApprovedAt)
		if err != nil {
			return entity.Order{}, fmt.Errorf("order %s: approved_at: %w", raw.ID, err)
		}

		t = t.UTC()
		o.ApprovedAt = &t
	}

	if raw.DeliveryDate != "" {
		d, err := entity.ParseDate(raw.DeliveryDate)
		if err != nil {
			return entity.Order{}, fmt.Errorf("order %s: delivery_date: %w", raw.ID, err)
		}

		o.DeliveryDate = &d
	}

	if o.CreatedAt.IsZero() && o.ApprovedAt == nil {
		return entity.Order{}, &inerr.MalformedOrderError{OrderID: raw.ID}
	}

	return o, nil
}
