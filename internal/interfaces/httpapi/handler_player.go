package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-hub/internal/usecase"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	items, err := h.playerService.Search(ctx, r.URL.Query().Get("query"))
	if err != nil {
		h.logFailure(ctx, "search players failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logFailure(ctx, "get player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	page, err := h.parsePageQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	result, err := h.playerService.List(ctx, usecase.ListPlayersInput{
		Position:    query.Get("position"),
		Nationality: query.Get("nationality"),
		Sort:        query.Get("sort"),
		Limit:       page.Limit,
		Skip:        page.Skip,
	})
	if err != nil {
		h.logFailure(ctx, "list players failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
