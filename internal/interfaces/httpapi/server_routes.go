package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /api", handler.APIIndex)
	mux.HandleFunc("/", handler.NotFound)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, logger *logging.Logger) {
	mux.HandleFunc("POST /auth/signup", handler.Signup)
	mux.HandleFunc("POST /auth/login", handler.Login)
	mux.Handle("GET /auth/me", RequireAuth(verifier, logger, http.HandlerFunc(handler.Me)))
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/news", handler.ListNews)
	mux.HandleFunc("GET /api/news/{articleID}", handler.GetNews)
	mux.HandleFunc("GET /api/stats/top-scorers", handler.TopScorers)
	mux.HandleFunc("GET /api/stats/top-assisters", handler.TopAssisters)
	mux.HandleFunc("GET /api/teams/{team}/logo", handler.GetTeamLogo)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, logger *logging.Logger) {
	authorized := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, logger, h)
	}

	mux.Handle("GET /api/matches", authorized(handler.ListMatches))
	mux.Handle("GET /api/matches/{matchID}", authorized(handler.GetMatch))
	mux.Handle("GET /api/matches/teams/{team}", authorized(handler.ListTeamMatches))
	mux.Handle("GET /api/players", authorized(handler.ListPlayers))
	mux.Handle("GET /api/players/search", authorized(handler.SearchPlayers))
	mux.Handle("GET /api/players/{playerID}", authorized(handler.GetPlayer))
	mux.Handle("GET /api/predictions/match", authorized(handler.PredictMatch))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, admins AdminChecker, logger *logging.Logger) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, logger, RequireAdmin(admins, logger, h))
	}

	mux.Handle("POST /api/admin/refresh-data", admin(handler.RefreshData))
	mux.Handle("GET /api/admin/status", admin(handler.EngineStatus))
}
