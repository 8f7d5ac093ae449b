package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type stubEngine struct {
	scrape  any
	health  any
	predict any
	err     error
	home    string
	away    string
}

func (s *stubEngine) TriggerScrape(context.Context) (any, error) {
	return s.scrape, s.err
}

func (s *stubEngine) Health(context.Context) (any, error) {
	return s.health, s.err
}

func (s *stubEngine) PredictMatch(_ context.Context, home, away string) (any, error) {
	s.home, s.away = home, away
	return s.predict, s.err
}

func TestAdminService_RefreshAndStatus(t *testing.T) {
	t.Parallel()

	engine := &stubEngine{
		scrape: map[string]any{"status": "started"},
		health: map[string]any{"status": "healthy"},
	}
	service := NewAdminService(engine)
	fixed := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	refresh, err := service.RefreshData(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refresh.Response.(map[string]any)["status"] != "started" || !refresh.TriggeredAt.Equal(fixed) {
		t.Fatalf("unexpected refresh result: %+v", refresh)
	}

	status, err := service.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Engine.(map[string]any)["status"] != "healthy" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestAdminService_PropagatesUnavailable(t *testing.T) {
	t.Parallel()

	engine := &stubEngine{err: fmt.Errorf("%w: AI engine unavailable", ErrDependencyUnavailable)}
	service := NewAdminService(engine)

	if _, err := service.RefreshData(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
	if _, err := service.Status(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}

func TestPredictionService_RequiresBothTeams(t *testing.T) {
	t.Parallel()

	engine := &stubEngine{predict: map[string]any{"winner": "home"}}
	service := NewPredictionService(engine)

	if _, err := service.PredictMatch(context.Background(), "Arsenal", " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	out, err := service.PredictMatch(context.Background(), " Arsenal ", "Chelsea")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if engine.home != "Arsenal" || engine.away != "Chelsea" {
		t.Fatalf("unexpected forwarded teams: %q %q", engine.home, engine.away)
	}
	if out.(map[string]any)["winner"] != "home" {
		t.Fatalf("unexpected prediction: %+v", out)
	}
}
