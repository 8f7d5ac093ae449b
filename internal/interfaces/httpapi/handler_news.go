package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/news"
)

type newsListResponse struct {
	Success   bool           `json:"success"`
	Data      []news.Article `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, newsListResponse{
		Success:   true,
		Data:      h.newsService.List(ctx),
		Timestamp: time.Now().UTC(),
	})
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	articleID := r.PathValue("articleID")
	article, err := h.newsService.Get(ctx, articleID)
	if err != nil {
		h.logFailure(ctx, "get news article failed", err, "article_id", articleID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, article)
}
