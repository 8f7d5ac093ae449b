package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/match"
)

// ListMatchesInput carries raw query values. Nil Limit/Skip take the defaults.
type ListMatchesInput struct {
	Status string
	Sort   string
	Limit  *int
	Skip   *int
}

type MatchPage struct {
	Matches    []match.Match `json:"matches"`
	Pagination Pagination    `json:"pagination"`
}

type TeamMatchPage struct {
	Team       string        `json:"team"`
	Matches    []match.Match `json:"matches"`
	Pagination Pagination    `json:"pagination"`
}

type MatchService struct {
	repo match.Repository
}

func NewMatchService(repo match.Repository) *MatchService {
	return &MatchService{repo: repo}
}

func (s *MatchService) List(ctx context.Context, input ListMatchesInput) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	filter := match.Filter{}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status, err := match.ParseStatusFilter(raw)
		if err != nil {
			return MatchPage{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		filter.Status = status
	}

	sortField := strings.ToLower(strings.TrimSpace(input.Sort))
	if sortField == "" {
		sortField = match.SortDate
	}
	if !match.IsSortField(sortField) {
		return MatchPage{}, fmt.Errorf("%w: invalid sort field %q", ErrInvalidInput, input.Sort)
	}

	limit, skip, err := resolvePage(input.Limit, input.Skip, DefaultMatchLimit)
	if err != nil {
		return MatchPage{}, err
	}

	items, err := s.repo.List(ctx, match.ListQuery{
		Filter:    filter,
		Page:      match.Page{Limit: limit, Skip: skip},
		SortField: sortField,
	})
	if err != nil {
		return MatchPage{}, fmt.Errorf("list matches: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return MatchPage{}, fmt.Errorf("count matches: %w", err)
	}

	return MatchPage{Matches: nonNilMatches(items), Pagination: newPagination(total, limit, skip)}, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match not found", ErrNotFound)
	}
	return item, nil
}

// ListForTeam returns a team's home and away matches, latest kickoff first.
func (s *MatchService) ListForTeam(ctx context.Context, team string, limit, skip *int) (TeamMatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListForTeam")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return TeamMatchPage{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	pageLimit, pageSkip, err := resolvePage(limit, skip, DefaultMatchLimit)
	if err != nil {
		return TeamMatchPage{}, err
	}

	filter := match.Filter{Team: team}
	items, err := s.repo.List(ctx, match.ListQuery{
		Filter:     filter,
		Page:       match.Page{Limit: pageLimit, Skip: pageSkip},
		SortField:  match.SortDate,
		Descending: true,
	})
	if err != nil {
		return TeamMatchPage{}, fmt.Errorf("list team matches: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return TeamMatchPage{}, fmt.Errorf("count team matches: %w", err)
	}

	return TeamMatchPage{
		Team:       team,
		Matches:    nonNilMatches(items),
		Pagination: newPagination(total, pageLimit, pageSkip),
	}, nil
}

// UpsertMatches stores a batch, refusing any item whose status would move
// backwards relative to the stored copy or to an earlier item with the same
// id in the batch.
func (s *MatchService) UpsertMatches(ctx context.Context, items []match.Match) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpsertMatches")
	defer span.End()

	if len(items) == 0 {
		return nil
	}

	accepted := make(map[string]match.Status, len(items))
	for i := range items {
		items[i].Normalize()
		if err := items[i].Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		current, seen := accepted[items[i].ID]
		if !seen {
			stored, exists, err := s.repo.GetByID(ctx, items[i].ID)
			if err != nil {
				return fmt.Errorf("get match %s: %w", items[i].ID, err)
			}
			current, seen = stored.Status, exists
		}
		if seen && !current.CanTransitionTo(items[i].Status) {
			return fmt.Errorf("%w: match %s cannot move from %s to %s", ErrConflict, items[i].ID, current, items[i].Status)
		}
		accepted[items[i].ID] = items[i].Status
	}

	if err := s.repo.Upsert(ctx, items); err != nil {
		return fmt.Errorf("upsert matches: %w", err)
	}
	return nil
}

func nonNilMatches(items []match.Match) []match.Match {
	if items == nil {
		return []match.Match{}
	}
	return items
}
