package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

type teamLogoDTO struct {
	Team   string       `json:"team"`
	Logo   string       `json:"logo"`
	Colors *team.Colors `json:"colors,omitempty"`
}

func (h *Handler) GetTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLogo")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("team"))
	if name == "" {
		writeError(ctx, w, fmt.Errorf("%w: team is required", usecase.ErrInvalidInput))
		return
	}

	dto := teamLogoDTO{Team: name, Logo: team.Logo(name)}
	if colors, ok := team.ColorsFor(name); ok {
		dto.Colors = &colors
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}
