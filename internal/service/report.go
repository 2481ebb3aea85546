package service

import (
	"context"
	"log"
	"shipdesk/internal/classifier"
	"shipdesk/internal/entity"
	"shipdesk/internal/policy"
	"time"
)

type Report struct {
	repository OrderRepository
	cache      ReportCache
	now        func() time.Time
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]entity.Order, error)
}

type ReportCache interface {
	Get(ctx context.Context, key string) (entity.Report, bool, error)
	Set(ctx context.Context, key string, report entity.Report) error
}

func NewReport(r OrderRepository, c ReportCache, now func() time.Time) *Report {
	return &Report{
		repository: r,
		cache:      c,
		now:        now,
	}
}

// Get returns the current fulfillment report, serving a cached copy when
// one is fresh. Orders the engine cannot classify are logged and left
// out; a cache failure is logged and the report is computed anyway.
func (s *Report) Get(ctx context.Context) (entity.Report, error) {
	now := s.now()
	key := "report:" + policy.BusinessDate(now).String()

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("report cache read: %v", err)
	} else if ok {
		return cached, nil
	}

	orders, err := s.repository.FindAll(ctx)
	if err != nil {
		return entity.Report{}, err
	}

	report, err := classifier.Classify(orders, now)
	if err != nil {
		log.Printf("orders excluded from report: %v", err)
	}

	if err := s.cache.Set(ctx, key, report); err != nil {
		log.Printf("report cache write: %v", err)
	}

	return report, nil
}

// FindByStatus returns the stored orders currently in the given status.
// Overdue filtering goes through the classifier's dedicated predicate.
func (s *Report) FindByStatus(ctx context.Context, status entity.Status) ([]entity.Order, error) {
	now := s.now()

	orders, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Order, 0, len(orders))
	if status == entity.StatusOverdue {
		for _, o := range orders {
			if classifier.IsOverdue(o, now) {
				matched = append(matched, o)
			}
		}

		return matched, nil
	}

	report, err := classifier.Classify(orders, now)
	if err != nil {
		log.Printf("orders excluded from listing: %v", err)
	}
	for _, o := range orders {
		if report.PerOrder[o.ID] == status {
			matched = append(matched, o)
		}
	}

	return matched, nil
}
