package worker

import (
	"context"
	"shipdesk/internal/entity"
	"sync"
	"time"
)

// Scheduler enqueues a first-page fetch job at a fixed interval, driving
// a full re-poll of the order API. One job is enqueued immediately on
// start.
type Scheduler struct {
	interval time.Duration
	jobs     chan<- entity.FetchJob
	wg       *sync.WaitGroup
}

func NewScheduler(interval time.Duration, j chan<- entity.FetchJob, wg *sync.WaitGroup) *Scheduler {
	return &Scheduler{
		interval: interval,
		jobs:     j,
		wg:       wg,
	}
}

func (s *Scheduler) Do(ctx context.Context) {
	s.wg.Add(1)

	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.jobs <- entity.NewFetchJob(1)

	for {
		select {
		case <-t.C:
			s.jobs <- entity.NewFetchJob(1)
		case <-ctx.Done():
			return
		}
	}
}
