package usecase

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/domain/leaderboard"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
)

// DefaultStatsTTL is how long a computed leaderboard is served before it is rebuilt.
const DefaultStatsTTL = 6 * time.Hour

type Leaderboard struct {
	Entries     []leaderboard.Entry
	Cached      bool
	LastUpdated time.Time
}

type StatsService struct {
	cache *cache.TimedCache
}

func NewStatsService(timed *cache.TimedCache) *StatsService {
	if timed == nil {
		timed = cache.NewTimedCache(nil, DefaultStatsTTL, nil, nil)
	}
	return &StatsService{cache: timed}
}

func (s *StatsService) TopScorers(ctx context.Context) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopScorers")
	defer span.End()

	return s.get(ctx, leaderboard.KindTopScorers)
}

func (s *StatsService) TopAssisters(ctx context.Context) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopAssisters")
	defer span.End()

	return s.get(ctx, leaderboard.KindTopAssisters)
}

func (s *StatsService) get(ctx context.Context, kind leaderboard.Kind) (Leaderboard, error) {
	result, err := s.cache.GetOrRefresh(ctx, "stats:"+string(kind), func(context.Context) ([]byte, error) {
		entries, ok := leaderboard.Compute(kind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown leaderboard %q", ErrInvalidInput, kind)
		}
		return sonic.Marshal(entries)
	})
	if err != nil {
		return Leaderboard{}, fmt.Errorf("load %s: %w", kind, err)
	}

	var entries []leaderboard.Entry
	if err := sonic.Unmarshal(result.Payload, &entries); err != nil {
		return Leaderboard{}, fmt.Errorf("decode %s snapshot: %w", kind, err)
	}

	return Leaderboard{
		Entries:     entries,
		Cached:      result.Cached,
		LastUpdated: result.RefreshedAt,
	}, nil
}
