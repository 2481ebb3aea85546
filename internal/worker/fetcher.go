package worker

import (
	"context"
	"log"
	"shipdesk/internal/entity"
	"sync"
)

// Fetcher pages through the order API and forwards fetched pages to the
// storer queue. Fetcher.workersCount workers consume page jobs; while
// the API reports more pages, the next page is enqueued. A page that
// fails to fetch is put back on the queue.
type Fetcher struct {
	client       OrderClient
	jobs         chan entity.FetchJob
	results      chan<- entity.FetchResult
	wg           *sync.WaitGroup
	workersCount int
}

type OrderClient interface {
	ListPage(ctx context.Context, page int) (orders []entity.RawOrder, hasMore bool, err error)
}

func NewFetcher(c OrderClient, j chan entity.FetchJob, res chan<- entity.FetchResult, wg *sync.WaitGroup, w int) *Fetcher {
	return &Fetcher{
		client:       c,
		jobs:         j,
		results:      res,
		wg:           wg,
		workersCount: w,
	}
}

func (f *Fetcher) Do(ctx context.Context) {
	for i := 0; i < f.workersCount; i++ {
		f.wg.Add(1)

		go f.worker(ctx)
	}
}

func (f *Fetcher) worker(ctx context.Context) {
	defer f.wg.Done()

	for {
		select {
		case j, ok := <-f.jobs:
			if !ok {
				return
			}

			orders, hasMore, err := f.client.ListPage(ctx, j.Page)
			if err != nil {
				f.jobs <- j
				log.Printf("error fetching orders page %d: %v", j.Page, err)

				continue
			}

			f.results <- entity.FetchResult{Orders: orders}
			if hasMore {
				f.jobs <- entity.NewFetchJob(j.Page + 1)
			}
		case <-ctx.Done():
			return
		}
	}
}
