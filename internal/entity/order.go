package entity

import "time"

// Order is a normalized order as the classification engine consumes it.
// ApprovedAt is absent until staff mark the order approved to ship.
// DeliveryDate is a customer-chosen date that, when present, overrides
// cutoff-based status derivation.
type Order struct {
	ID           string     `json:"id"`
	CreatedAt    time.Time  `json:"createdAt"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`
	DeliveryDate *Date      `json:"deliveryDate,omitempty"`
	Provincial   bool       `json:"provincial"`
}

// RawOrder is an order as the order API returns it, before normalization.
type RawOrder struct {
	ID             string `json:"id"`
	CreatedAt      string `json:"created_at"`
	ApprovedAt     string `json:"approved_at"`
	DeliveryDate   string `json:"delivery_date"`
	ShippingRegion string `json:"shipping_region"`
}

type Status string

const (
	StatusScheduled     Status = "SCHEDULED"
	StatusDueToday      Status = "DUE_TODAY"
	StatusOverdue       Status = "OVERDUE"
	StatusNewlyApproved Status = "NEWLY_APPROVED"
)

type FetchJob struct {
	Page int
}

type FetchResult struct {
	Orders []RawOrder
}

func NewFetchJob(page int) FetchJob {
	return FetchJob{Page: page}
}
