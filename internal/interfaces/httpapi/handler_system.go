package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-hub/internal/usecase"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type apiIndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

var apiEndpoints = map[string]string{
	"auth":        "/auth/signup, /auth/login, /auth/me",
	"matches":     "/api/matches, /api/matches/{id}, /api/matches/teams/{team}",
	"players":     "/api/players, /api/players/search?query=, /api/players/{id}",
	"news":        "/api/news, /api/news/{id}",
	"stats":       "/api/stats/top-scorers, /api/stats/top-assisters",
	"teams":       "/api/teams/{team}/logo",
	"predictions": "/api/predictions/match?home_team=&away_team=",
	"admin":       "/api/admin/refresh-data, /api/admin/status",
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Timestamp: time.Now().UTC(),
	})
}

func (h *Handler) APIIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.APIIndex")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, apiIndexResponse{
		Message:   "Football Hub Server API",
		Version:   h.version,
		Endpoints: apiEndpoints,
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: route not found", usecase.ErrNotFound))
}
