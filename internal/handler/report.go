package handler

import (
	"context"
	"net/http"
	"shipdesk/internal/entity"
)

type Report struct {
	provider  ReportProvider
	validator Validator
}

type ReportProvider interface {
	Get(ctx context.Context) (entity.Report, error)
	FindByStatus(ctx context.Context, status entity.Status) ([]entity.Order, error)
}

type Validator interface {
	Var(ctx context.Context, field any, tag string) error
}

func NewReport(p ReportProvider, v Validator) *Report {
	return &Report{
		provider:  p,
		validator: v,
	}
}

// Get returns the current fulfillment report: per-order statuses and
// aggregate counts.
func (h *Report) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.provider.Get(r.Context())
	if err != nil {
		serverError(w)

		return
	}

	responseAsJSON(w, report, http.StatusOK)
}

// GetOrders returns the orders currently in the status given by the
// status query parameter. Responds with code 422 for an unknown status
// and 204 when no orders match.
func (h *Report) GetOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if err := h.validator.Var(r.Context(), status, "reportstatus"); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)

		return
	}

	orders, err := h.provider.FindByStatus(r.Context(), entity.Status(status))
	if err != nil {
		serverError(w)

		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	responseAsJSON(w, orders, http.StatusOK)
}
