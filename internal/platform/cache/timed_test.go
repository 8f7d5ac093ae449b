package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/platform/clock"
)

func TestTimedCache_ServesCachedWithinTTL(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	c := NewTimedCache(NewMemorySnapshotStore(), 6*time.Hour, clk, nil)
	calls := 0
	compute := func(context.Context) ([]byte, error) {
		calls++
		return []byte("payload"), nil
	}

	first, err := c.GetOrRefresh(context.Background(), "scorers", compute)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.Cached {
		t.Fatalf("expected first call to recompute")
	}

	clk.Advance(6*time.Hour - time.Second)
	second, err := c.GetOrRefresh(context.Background(), "scorers", compute)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !second.Cached {
		t.Fatalf("expected second call to be cached")
	}
	if !second.RefreshedAt.Equal(first.RefreshedAt) {
		t.Fatalf("refreshedAt changed: %s -> %s", first.RefreshedAt, second.RefreshedAt)
	}
	if string(second.Payload) != "payload" {
		t.Fatalf("unexpected payload: %q", second.Payload)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}

func TestTimedCache_RecomputesAtTTLBoundary(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start)
	c := NewTimedCache(nil, time.Hour, clk, nil)
	compute := func(context.Context) ([]byte, error) { return []byte("x"), nil }

	if _, err := c.GetOrRefresh(context.Background(), "k", compute); err != nil {
		t.Fatalf("first call: %v", err)
	}
	clk.Advance(time.Hour)
	got, err := c.GetOrRefresh(context.Background(), "k", compute)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if got.Cached {
		t.Fatalf("expected recompute once age reaches ttl")
	}
	if !got.RefreshedAt.Equal(start.Add(time.Hour)) {
		t.Fatalf("unexpected refreshedAt: %s", got.RefreshedAt)
	}
}

func TestTimedCache_ComputeErrorIsReturned(t *testing.T) {
	t.Parallel()

	c := NewTimedCache(nil, time.Hour, nil, nil)
	wantErr := errors.New("compute failed")
	_, err := c.GetOrRefresh(context.Background(), "k", func(context.Context) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected compute error, got %v", err)
	}
}

type failingSnapshotStore struct{}

func (failingSnapshotStore) Load(context.Context, string) (Snapshot, bool, error) {
	return Snapshot{}, false, errors.New("store down")
}

func (failingSnapshotStore) Save(context.Context, string, Snapshot) error {
	return errors.New("store down")
}

func TestTimedCache_StoreFailureDegradesToRecompute(t *testing.T) {
	t.Parallel()

	c := NewTimedCache(failingSnapshotStore{}, time.Hour, nil, nil)
	got, err := c.GetOrRefresh(context.Background(), "k", func(context.Context) ([]byte, error) {
		return []byte("fresh"), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cached || string(got.Payload) != "fresh" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
