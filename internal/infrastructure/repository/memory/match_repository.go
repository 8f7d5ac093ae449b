package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
	index map[string]int
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{index: make(map[string]int, len(matches))}
	for _, m := range matches {
		r.put(m)
	}

	return r
}

func (r *MatchRepository) List(_ context.Context, query match.ListQuery) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filtered(query.Filter)
	slices.SortStableFunc(out, func(a, b match.Match) int {
		c := compareMatches(a, b, query.SortField)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if query.Descending {
			return -c
		}
		return c
	})

	start, end := pageBounds(len(out), query.Page.Skip, query.Page.Limit)
	return out[start:end], nil
}

func (r *MatchRepository) Count(_ context.Context, filter match.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filtered(filter)), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return r.items[idx], true, nil
}

func (r *MatchRepository) Upsert(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, m := range items {
		if idx, ok := r.index[m.ID]; ok {
			m.CreatedAt = r.items[idx].CreatedAt
		} else if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		m.UpdatedAt = now
		r.put(m)
	}

	return nil
}

func (r *MatchRepository) put(m match.Match) {
	if idx, ok := r.index[m.ID]; ok {
		r.items[idx] = m
		return
	}
	r.index[m.ID] = len(r.items)
	r.items = append(r.items, m)
}

func (r *MatchRepository) filtered(filter match.Filter) []match.Match {
	team := strings.ToLower(strings.TrimSpace(filter.Team))

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if team != "" &&
			!strings.Contains(strings.ToLower(m.HomeTeam), team) &&
			!strings.Contains(strings.ToLower(m.AwayTeam), team) {
			continue
		}
		out = append(out, m)
	}

	return out
}

func compareMatches(a, b match.Match, field string) int {
	switch field {
	case match.SortHomeTeam:
		return cmp.Compare(a.HomeTeam, b.HomeTeam)
	case match.SortAwayTeam:
		return cmp.Compare(a.AwayTeam, b.AwayTeam)
	case match.SortLeague:
		return cmp.Compare(a.League, b.League)
	case match.SortSeason:
		return cmp.Compare(a.Season, b.Season)
	case match.SortStatus:
		return cmp.Compare(a.Status, b.Status)
	default:
		return a.KickoffAt.Compare(b.KickoffAt)
	}
}

// pageBounds clamps a skip/limit window to a slice of length n.
// A non-positive limit means no upper bound.
func pageBounds(n, skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if skip > n {
		skip = n
	}
	end := n
	if limit > 0 && skip+limit < n {
		end = skip + limit
	}
	return skip, end
}
