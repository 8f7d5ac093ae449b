package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/leaderboard"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

type leaderboardResponse struct {
	Success     bool                `json:"success"`
	Data        []leaderboard.Entry `json:"data"`
	Cached      bool                `json:"cached"`
	LastUpdated string              `json:"lastUpdated"`
}

func (h *Handler) TopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopScorers")
	defer span.End()

	h.writeLeaderboard(ctx, w, h.statsService.TopScorers)
}

func (h *Handler) TopAssisters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopAssisters")
	defer span.End()

	h.writeLeaderboard(ctx, w, h.statsService.TopAssisters)
}

func (h *Handler) writeLeaderboard(ctx context.Context, w http.ResponseWriter, load func(context.Context) (usecase.Leaderboard, error)) {
	board, err := load(ctx)
	if err != nil {
		h.logFailure(ctx, "load leaderboard failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, leaderboardResponse{
		Success:     true,
		Data:        board.Entries,
		Cached:      board.Cached,
		LastUpdated: board.LastUpdated.UTC().Format(time.RFC3339),
	})
}
