package usecase

import (
	"context"
	"time"
)

// AIEngine is the external scraping/prediction service. Responses are
// opaque JSON values passed through to callers.
type AIEngine interface {
	TriggerScrape(ctx context.Context) (any, error)
	Health(ctx context.Context) (any, error)
	PredictMatch(ctx context.Context, homeTeam, awayTeam string) (any, error)
}

type RefreshResult struct {
	Response    any
	TriggeredAt time.Time
}

type EngineStatus struct {
	Engine    any
	CheckedAt time.Time
}

type AdminService struct {
	engine AIEngine
	now    func() time.Time
}

func NewAdminService(engine AIEngine) *AdminService {
	return &AdminService{engine: engine, now: time.Now}
}

func (s *AdminService) RefreshData(ctx context.Context) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.RefreshData")
	defer span.End()

	out, err := s.engine.TriggerScrape(ctx)
	if err != nil {
		return RefreshResult{}, err
	}
	return RefreshResult{Response: out, TriggeredAt: s.now().UTC()}, nil
}

func (s *AdminService) Status(ctx context.Context) (EngineStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Status")
	defer span.End()

	out, err := s.engine.Health(ctx)
	if err != nil {
		return EngineStatus{}, err
	}
	return EngineStatus{Engine: out, CheckedAt: s.now().UTC()}, nil
}
