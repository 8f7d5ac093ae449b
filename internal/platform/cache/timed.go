package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-hub/internal/platform/clock"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"golang.org/x/sync/singleflight"
)

// TimedResult is what TimedCache hands back to callers.
type TimedResult struct {
	Payload     []byte
	RefreshedAt time.Time
	Cached      bool
}

// TimedCache serves a snapshot while now - refreshedAt < ttl and recomputes
// it otherwise. Store failures degrade to recomputation.
type TimedCache struct {
	store  SnapshotStore
	ttl    time.Duration
	clock  clock.Clock
	logger *logging.Logger
	flight singleflight.Group
}

func NewTimedCache(store SnapshotStore, ttl time.Duration, clk clock.Clock, logger *logging.Logger) *TimedCache {
	if store == nil {
		store = NewMemorySnapshotStore()
	}
	if clk == nil {
		clk = clock.System()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TimedCache{
		store:  store,
		ttl:    ttl,
		clock:  clk,
		logger: logger,
	}
}

func (c *TimedCache) GetOrRefresh(ctx context.Context, key string, compute func(context.Context) ([]byte, error)) (TimedResult, error) {
	if compute == nil {
		return TimedResult{}, fmt.Errorf("compute is required")
	}

	if result, ok := c.fresh(ctx, key); ok {
		return result, nil
	}

	out, err, _ := c.flight.Do(key, func() (any, error) {
		if result, ok := c.fresh(ctx, key); ok {
			return result, nil
		}

		payload, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		snapshot := Snapshot{Payload: payload, RefreshedAt: c.clock.Now()}
		if err := c.store.Save(ctx, key, snapshot); err != nil {
			c.logger.WarnContext(ctx, "save cache snapshot failed", "key", key, "error", err)
		}
		return TimedResult{Payload: payload, RefreshedAt: snapshot.RefreshedAt, Cached: false}, nil
	})
	if err != nil {
		return TimedResult{}, err
	}

	result, _ := out.(TimedResult)
	return result, nil
}

func (c *TimedCache) fresh(ctx context.Context, key string) (TimedResult, bool) {
	snapshot, ok, err := c.store.Load(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "load cache snapshot failed", "key", key, "error", err)
		return TimedResult{}, false
	}
	if !ok {
		return TimedResult{}, false
	}
	if c.clock.Now().Sub(snapshot.RefreshedAt) >= c.ttl {
		return TimedResult{}, false
	}
	return TimedResult{Payload: snapshot.Payload, RefreshedAt: snapshot.RefreshedAt, Cached: true}, true
}
