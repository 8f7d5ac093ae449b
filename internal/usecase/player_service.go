package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/football-hub/internal/domain/player"
)

type ListPlayersInput struct {
	Position    string
	Nationality string
	Sort        string
	Limit       *int
	Skip        *int
}

type PlayerPage struct {
	Players    []player.Listing `json:"players"`
	Pagination Pagination       `json:"pagination"`
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// Search matches name or full name; queries under two characters return
// nothing without touching storage.
func (s *PlayerService) Search(ctx context.Context, query string) ([]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < player.MinQueryLength {
		return []player.Summary{}, nil
	}

	items, err := s.playerRepo.Search(ctx, query, player.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	if items == nil {
		items = []player.Summary{}
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player not found", ErrNotFound)
	}
	return item, nil
}

func (s *PlayerService) List(ctx context.Context, input ListPlayersInput) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	limit, skip, err := resolvePage(input.Limit, input.Skip, DefaultPlayerLimit)
	if err != nil {
		return PlayerPage{}, err
	}

	filter := player.Filter{
		Position:    strings.TrimSpace(input.Position),
		Nationality: strings.TrimSpace(input.Nationality),
	}
	items, err := s.playerRepo.List(ctx, player.ListQuery{
		Filter: filter,
		Sort:   player.ParseSortKey(input.Sort),
		Limit:  limit,
		Skip:   skip,
	})
	if err != nil {
		return PlayerPage{}, fmt.Errorf("list players: %w", err)
	}
	total, err := s.playerRepo.Count(ctx, filter)
	if err != nil {
		return PlayerPage{}, fmt.Errorf("count players: %w", err)
	}

	listings := make([]player.Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, item.Listing())
	}
	return PlayerPage{Players: listings, Pagination: newPagination(total, limit, skip)}, nil
}

// UpsertPlayers validates and stores a batch keyed by player id.
func (s *PlayerService) UpsertPlayers(ctx context.Context, items []player.Player) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpsertPlayers")
	defer span.End()

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if len(items) == 0 {
		return nil
	}
	if err := s.playerRepo.Upsert(ctx, items); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}
