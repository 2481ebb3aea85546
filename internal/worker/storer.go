package worker

import (
	"context"
	"log"
	"shipdesk/internal/entity"
	"shipdesk/internal/normalizer"
	"sync"
)

// Storer receives fetched pages, normalizes every raw order and saves
// it. Storer.workersCount workers consume the queue. Orders the
// normalizer rejects are logged and skipped.
type Storer struct {
	repository   StorerRepository
	queue        <-chan entity.FetchResult
	wg           *sync.WaitGroup
	workersCount int
}

type StorerRepository interface {
	Upsert(ctx context.Context, o entity.Order) error
}

func NewStorer(r StorerRepository, q <-chan entity.FetchResult, wg *sync.WaitGroup, w int) *Storer {
	return &Storer{
		repository:   r,
		queue:        q,
		wg:           wg,
		workersCount: w,
	}
}

func (s *Storer) Do(ctx context.Context) {
	for i := 0; i < s.workersCount; i++ {
		s.wg.Add(1)

		go s.worker(ctx)
	}
}

func (s *Storer) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case res, ok := <-s.queue:
			if !ok {
				return
			}

			for _, raw := range res.Orders {
				o, err := normalizer.Normalize(raw)
				if err != nil {
					log.Printf("error normalizing order %s: %v", raw.ID, err)

					continue
				}

				if err := s.repository.Upsert(ctx, o); err != nil {
					log.Printf("error saving order %s: %v", o.ID, err)
				}
			}
		case <-ctx.Done():
			return
		}
	}
}
