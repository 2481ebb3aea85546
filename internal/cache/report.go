package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"shipdesk/internal/entity"
	"time"
)

// Report caches serialized fulfillment reports in Redis for a short TTL,
// so repeated dashboard requests do not re-read and re-classify every
// stored order.
type Report struct {
	c   *redis.Client
	ttl time.Duration
}

func NewReport(addr string, ttl time.Duration) *Report {
	return &Report{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		ttl: ttl,
	}
}

// Get returns the cached report under a key and whether it was present.
func (r *Report) Get(ctx context.Context, key string) (entity.Report, bool, error) {
	b, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return entity.Report{}, false, nil
	}
	if err != nil {
		return entity.Report{}, false, fmt.Errorf("redis get: %w", err)
	}

	var report entity.Report
	if err := json.Unmarshal(b, &report); err != nil {
		return entity.Report{}, false, fmt.Errorf("redis get: %w", err)
	}

	return report, true, nil
}

// Set stores a report under a key for the configured TTL.
func (r *Report) Set(ctx context.Context, key string, report entity.Report) error {
	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	if err := r.c.Set(ctx, key, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}
