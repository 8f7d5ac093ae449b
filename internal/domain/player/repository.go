package player

import (
	"context"
	"strings"
)

const (
	SearchLimit    = 10
	MinQueryLength = 2
)

// SortKey orders player listings.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByGoals  SortKey = "goals"
	SortByRating SortKey = "rating"
)

// ParseSortKey falls back to name ordering for anything unrecognised.
func ParseSortKey(v string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(v))) {
	case SortByGoals:
		return SortByGoals
	case SortByRating:
		return SortByRating
	default:
		return SortByName
	}
}

// Filter uses exact matches on position and nationality when set.
type Filter struct {
	Position    string
	Nationality string
}

type ListQuery struct {
	Filter Filter
	Sort   SortKey
	Limit  int
	Skip   int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	Search(ctx context.Context, query string, limit int) ([]Summary, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	List(ctx context.Context, query ListQuery) ([]Player, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Upsert(ctx context.Context, items []Player) error
}
