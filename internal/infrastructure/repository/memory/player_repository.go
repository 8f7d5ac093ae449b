package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items []player.Player
	index map[string]int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{index: make(map[string]int, len(players))}
	for _, p := range players {
		r.put(p)
	}

	return r
}

func (r *PlayerRepository) Search(_ context.Context, query string, limit int) ([]player.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]player.Player, 0)
	for _, p := range r.items {
		if strings.Contains(strings.ToLower(p.BasicInfo.Name), needle) ||
			strings.Contains(strings.ToLower(p.BasicInfo.FullName), needle) {
			matches = append(matches, p)
		}
	}
	slices.SortStableFunc(matches, func(a, b player.Player) int {
		return cmp.Compare(a.BasicInfo.Name, b.BasicInfo.Name)
	})

	_, end := pageBounds(len(matches), 0, limit)
	out := make([]player.Summary, 0, end)
	for _, p := range matches[:end] {
		out = append(out, p.Summary())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.items[idx], true, nil
}

func (r *PlayerRepository) List(_ context.Context, query player.ListQuery) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filtered(query.Filter)
	slices.SortStableFunc(out, func(a, b player.Player) int {
		var c int
		switch query.Sort {
		case player.SortByGoals:
			c = cmp.Compare(b.SeasonStats.Goals, a.SeasonStats.Goals)
		case player.SortByRating:
			c = cmp.Compare(b.Ratings.Overall, a.Ratings.Overall)
		default:
			c = cmp.Compare(a.BasicInfo.Name, b.BasicInfo.Name)
		}
		if c == 0 {
			c = cmp.Compare(a.PlayerID, b.PlayerID)
		}
		return c
	})

	start, end := pageBounds(len(out), query.Skip, query.Limit)
	return out[start:end], nil
}

func (r *PlayerRepository) Count(_ context.Context, filter player.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filtered(filter)), nil
}

func (r *PlayerRepository) Upsert(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, p := range items {
		if idx, ok := r.index[p.PlayerID]; ok {
			p.CreatedAt = r.items[idx].CreatedAt
		} else if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		r.put(p)
	}

	return nil
}

func (r *PlayerRepository) put(p player.Player) {
	if idx, ok := r.index[p.PlayerID]; ok {
		r.items[idx] = p
		return
	}
	r.index[p.PlayerID] = len(r.items)
	r.items = append(r.items, p)
}

func (r *PlayerRepository) filtered(filter player.Filter) []player.Player {
	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if filter.Position != "" && p.BasicInfo.Position != filter.Position {
			continue
		}
		if filter.Nationality != "" && p.BasicInfo.Nationality != filter.Nationality {
			continue
		}
		out = append(out, p)
	}

	return out
}
