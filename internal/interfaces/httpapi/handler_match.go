package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// matchDTO is a stored match decorated with crest URLs for both sides.
type matchDTO struct {
	match.Match
	HomeLogo string `json:"home_logo"`
	AwayLogo string `json:"away_logo"`
}

type matchListDTO struct {
	Matches    []matchDTO         `json:"matches"`
	Pagination usecase.Pagination `json:"pagination"`
}

type teamMatchListDTO struct {
	Team       string             `json:"team"`
	Matches    []matchDTO         `json:"matches"`
	Pagination usecase.Pagination `json:"pagination"`
}

func toMatchDTO(m match.Match) matchDTO {
	return matchDTO{
		Match:    m,
		HomeLogo: team.Logo(m.HomeTeam),
		AwayLogo: team.Logo(m.AwayTeam),
	}
}

func toMatchDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toMatchDTO(item))
	}
	return out
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	page, err := h.parsePageQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	result, err := h.matchService.List(ctx, usecase.ListMatchesInput{
		Status: query.Get("status"),
		Sort:   query.Get("sort"),
		Limit:  page.Limit,
		Skip:   page.Skip,
	})
	if err != nil {
		h.logFailure(ctx, "list matches failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchListDTO{
		Matches:    toMatchDTOs(result.Matches),
		Pagination: result.Pagination,
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logFailure(ctx, "get match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchDTO(item))
}

func (h *Handler) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	page, err := h.parsePageQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamName := r.PathValue("team")
	result, err := h.matchService.ListForTeam(ctx, teamName, page.Limit, page.Skip)
	if err != nil {
		h.logFailure(ctx, "list team matches failed", err, "team", teamName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamMatchListDTO{
		Team:       result.Team,
		Matches:    toMatchDTOs(result.Matches),
		Pagination: result.Pagination,
	})
}
