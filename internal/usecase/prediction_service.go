package usecase

import (
	"context"
	"fmt"
	"strings"
)

type PredictionService struct {
	engine AIEngine
}

func NewPredictionService(engine AIEngine) *PredictionService {
	return &PredictionService{engine: engine}
}

func (s *PredictionService) PredictMatch(ctx context.Context, homeTeam, awayTeam string) (any, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.PredictMatch")
	defer span.End()

	homeTeam = strings.TrimSpace(homeTeam)
	awayTeam = strings.TrimSpace(awayTeam)
	if homeTeam == "" || awayTeam == "" {
		return nil, fmt.Errorf("%w: home_team and away_team are required", ErrInvalidInput)
	}
	return s.engine.PredictMatch(ctx, homeTeam, awayTeam)
}
