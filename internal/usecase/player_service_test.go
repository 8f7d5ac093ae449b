package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-hub/internal/domain/player"
	"github.com/riskibarqy/football-hub/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/football-hub/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_SearchShortQuerySkipsStorage(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	for _, query := range []string{"", " ", " a "} {
		got, err := service.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("search %q: expected empty non-nil result, got %#v", query, got)
		}
	}
}

func TestPlayerService_SearchPassesLimit(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	repo.On("Search", mock.Anything, "sa", player.SearchLimit).
		Return([]player.Summary{{ID: "bukayo-saka", Name: "Bukayo Saka"}}, nil).
		Once()

	got, err := NewPlayerService(repo).Search(context.Background(), " sa ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "bukayo-saka" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestPlayerService_ListSortsAndPaginates(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	page, err := service.List(context.Background(), ListPlayersInput{Sort: "goals", Limit: intRef(2)})
	if err != nil {
		t.Fatalf("list by goals: %v", err)
	}
	if len(page.Players) != 2 || page.Players[0].PlayerID != "mohamed-salah" || page.Players[1].PlayerID != "erling-haaland" {
		t.Fatalf("unexpected goal ordering: %+v", page.Players)
	}
	if page.Pagination != (Pagination{Total: 4, Limit: 2, Skip: 0, HasMore: true}) {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}

	page, err = service.List(context.Background(), ListPlayersInput{Position: "Defender", Sort: "whatever"})
	if err != nil {
		t.Fatalf("list defenders: %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].PlayerID != "virgil-van-dijk" {
		t.Fatalf("unexpected defenders: %+v", page.Players)
	}
	if page.Pagination.Limit != DefaultPlayerLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultPlayerLimit, page.Pagination.Limit)
	}

	if _, err := service.List(context.Background(), ListPlayersInput{Limit: intRef(1000)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for oversized limit, got %v", err)
	}
}

func TestPlayerService_GetNotFound(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))
	if _, err := service.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	got, err := service.Get(context.Background(), "bukayo-saka")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.CurrentClub.Name != "Arsenal" {
		t.Fatalf("unexpected player: %+v", got)
	}
}
