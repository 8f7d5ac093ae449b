// Package seeder bulk-loads players and matches from JSON exports.
package seeder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/player"
	"github.com/riskibarqy/football-hub/internal/platform/id"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

const (
	DefaultWorkers   = 4
	DefaultBatchSize = 50
)

type MatchUpserter interface {
	UpsertMatches(ctx context.Context, items []match.Match) error
}

type PlayerUpserter interface {
	UpsertPlayers(ctx context.Context, items []player.Player) error
}

// BatchError records one failed batch by its record range.
type BatchError struct {
	From int
	To   int
	Err  error
}

func (e BatchError) Error() string {
	return fmt.Sprintf("records %d-%d: %v", e.From, e.To, e.Err)
}

func (e BatchError) Unwrap() error { return e.Err }

type Report struct {
	Kind       string
	Records    int
	Batches    int
	Failed     []BatchError
	DurationMs int64
}

// Loaded is the number of records whose batch was accepted.
func (r Report) Loaded() int {
	failed := 0
	for _, f := range r.Failed {
		failed += f.To - f.From
	}
	return r.Records - failed
}

type Runner struct {
	workers   int
	batchSize int
	ids       id.Generator
	logger    *logging.Logger
}

func NewRunner(workers, batchSize int, ids id.Generator, logger *logging.Logger) *Runner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{workers: workers, batchSize: batchSize, ids: ids, logger: logger}
}

// Matches decodes a JSON array of matches and upserts it. Records without an
// id get a generated one. Records sharing an id are moved next to each other,
// keeping their relative order, and always land in the same batch so the
// status check sees them in sequence. Batch ranges in the report index that
// grouped order.
func (r *Runner) Matches(ctx context.Context, svc MatchUpserter, raw []byte) (Report, error) {
	var items []match.Match
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return Report{}, fmt.Errorf("decode matches: %w", err)
	}
	for i := range items {
		if items[i].ID != "" {
			continue
		}
		generated, err := r.ids.NewID()
		if err != nil {
			return Report{}, err
		}
		items[i].ID = generated
	}
	items, bounds := groupByID(items, r.batchSize)

	return r.run(ctx, "matches", bounds, func(ctx context.Context, from, to int) error {
		return svc.UpsertMatches(ctx, items[from:to])
	})
}

func (r *Runner) Players(ctx context.Context, svc PlayerUpserter, raw []byte) (Report, error) {
	var items []player.Player
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return Report{}, fmt.Errorf("decode players: %w", err)
	}

	return r.run(ctx, "players", fixedBatches(len(items), r.batchSize), func(ctx context.Context, from, to int) error {
		return svc.UpsertPlayers(ctx, items[from:to])
	})
}

// batch is a half-open record range [from, to).
type batch struct{ from, to int }

func fixedBatches(total, size int) []batch {
	out := make([]batch, 0, (total+size-1)/size)
	for from := 0; from < total; from += size {
		out = append(out, batch{from: from, to: min(from+size, total)})
	}
	return out
}

// groupByID reorders items so equal ids are adjacent and cuts batches of up
// to size records without splitting a group. A group larger than size
// becomes a batch of its own.
func groupByID(items []match.Match, size int) ([]match.Match, []batch) {
	order := make([]string, 0, len(items))
	groups := make(map[string][]match.Match, len(items))
	for _, item := range items {
		if _, ok := groups[item.ID]; !ok {
			order = append(order, item.ID)
		}
		groups[item.ID] = append(groups[item.ID], item)
	}

	out := make([]match.Match, 0, len(items))
	var bounds []batch
	from := 0
	for _, id := range order {
		group := groups[id]
		if len(out)-from > 0 && len(out)-from+len(group) > size {
			bounds = append(bounds, batch{from: from, to: len(out)})
			from = len(out)
		}
		out = append(out, group...)
	}
	if len(out) > from {
		bounds = append(bounds, batch{from: from, to: len(out)})
	}
	return out, bounds
}

func (r *Runner) run(ctx context.Context, kind string, batches []batch, upsert func(ctx context.Context, from, to int) error) (Report, error) {
	start := time.Now()
	report := Report{Kind: kind}
	if len(batches) > 0 {
		report.Records = batches[len(batches)-1].to
	}
	if report.Records == 0 {
		return report, nil
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return Report{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		workers sync.WaitGroup
	)
	for _, b := range batches {
		from, to := b.from, b.to
		report.Batches++

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := upsert(ctx, from, to); err != nil {
				r.logger.WarnContext(ctx, "seed batch failed", "kind", kind, "from", from, "to", to, "error", err)
				mu.Lock()
				report.Failed = append(report.Failed, BatchError{From: from, To: to, Err: err})
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return Report{}, fmt.Errorf("submit batch to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.Slice(report.Failed, func(i, j int) bool { return report.Failed[i].From < report.Failed[j].From })
	report.DurationMs = time.Since(start).Milliseconds()
	r.logger.InfoContext(ctx, "seed finished",
		"kind", kind,
		"records", report.Records,
		"loaded", report.Loaded(),
		"failed_batches", len(report.Failed),
		"duration_ms", report.DurationMs,
	)

	return report, nil
}
