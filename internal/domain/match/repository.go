package match

import "context"

const (
	SortDate     = "date"
	SortHomeTeam = "home_team"
	SortAwayTeam = "away_team"
	SortLeague   = "league"
	SortSeason   = "season"
	SortStatus   = "status"
)

var sortFields = map[string]struct{}{
	SortDate:     {},
	SortHomeTeam: {},
	SortAwayTeam: {},
	SortLeague:   {},
	SortSeason:   {},
	SortStatus:   {},
}

func IsSortField(v string) bool {
	_, ok := sortFields[v]
	return ok
}

// Filter narrows the match collection. Zero values mean no constraint.
type Filter struct {
	Status Status
	// Team matches home or away team by case-insensitive substring.
	Team string
}

type Page struct {
	Limit int
	Skip  int
}

// ListQuery orders by SortField; Descending flips the direction.
type ListQuery struct {
	Filter     Filter
	Page       Page
	SortField  string
	Descending bool
}

// Repository exposes match reads and the bulk upsert used by seeding.
type Repository interface {
	List(ctx context.Context, query ListQuery) ([]Match, error)
	Count(ctx context.Context, filter Filter) (int, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Upsert(ctx context.Context, items []Match) error
}
