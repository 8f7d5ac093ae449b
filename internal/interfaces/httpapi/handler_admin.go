package httpapi

import (
	"net/http"
	"time"
)

type refreshDataResponse struct {
	Success          bool      `json:"success"`
	Message          string    `json:"message"`
	AIEngineResponse any       `json:"aiEngineResponse"`
	Timestamp        time.Time `json:"timestamp"`
}

type engineStatusResponse struct {
	Success   bool      `json:"success"`
	AIEngine  any       `json:"aiEngine"`
	Timestamp time.Time `json:"timestamp"`
}

type predictionQuery struct {
	HomeTeam string `validate:"required"`
	AwayTeam string `validate:"required"`
}

func (h *Handler) RefreshData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshData")
	defer span.End()

	h.logger.InfoContext(ctx, "triggering ai engine refresh")
	result, err := h.adminService.RefreshData(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "ai engine refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, refreshDataResponse{
		Success:          true,
		Message:          "Data refresh triggered successfully",
		AIEngineResponse: result.Response,
		Timestamp:        result.TriggeredAt,
	})
}

func (h *Handler) EngineStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EngineStatus")
	defer span.End()

	status, err := h.adminService.Status(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, engineStatusResponse{
		Success:   true,
		AIEngine:  status.Engine,
		Timestamp: status.CheckedAt,
	})
}

func (h *Handler) PredictMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictMatch")
	defer span.End()

	query := predictionQuery{
		HomeTeam: r.URL.Query().Get("home_team"),
		AwayTeam: r.URL.Query().Get("away_team"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.predictionService.PredictMatch(ctx, query.HomeTeam, query.AwayTeam)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
