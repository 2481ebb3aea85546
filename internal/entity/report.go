package entity

// Counts are the aggregate totals of a fulfillment report. Orders that
// are overdue under the cutoff rule still have to ship today, so they
// are counted in both Overdue and DueToday; orders overdue because their
// customer-chosen delivery date has passed are counted in Overdue only.
// Pending is DueToday + Scheduled + NewlyApproved.
type Counts struct {
	DueToday      int `json:"dueToday"`
	Overdue       int `json:"overdue"`
	Scheduled     int `json:"scheduled"`
	NewlyApproved int `json:"newlyApproved"`
	Pending       int `json:"pending"`
}

// Report holds the classification of a set of orders at one instant.
type Report struct {
	PerOrder map[string]Status `json:"perOrder"`
	Counts   Counts            `json:"counts"`
}
