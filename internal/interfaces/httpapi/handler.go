package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

type Handler struct {
	authService       *usecase.AuthService
	matchService      *usecase.MatchService
	playerService     *usecase.PlayerService
	newsService       *usecase.NewsService
	statsService      *usecase.StatsService
	adminService      *usecase.AdminService
	predictionService *usecase.PredictionService
	version           string
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	newsService *usecase.NewsService,
	statsService *usecase.StatsService,
	adminService *usecase.AdminService,
	predictionService *usecase.PredictionService,
	version string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:       authService,
		matchService:      matchService,
		playerService:     playerService,
		newsService:       newsService,
		statsService:      statsService,
		adminService:      adminService,
		predictionService: predictionService,
		version:           version,
		logger:            logger,
		validator:         validator.New(),
	}
}

type authResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    usecase.PublicUser `json:"user"`
}

type meResponse struct {
	Success bool               `json:"success"`
	User    usecase.PublicUser `json:"user"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Signup")
	defer span.End()

	var req usecase.SignupInput
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Signup(ctx, req)
	if err != nil {
		h.logFailure(ctx, "signup failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, authResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req usecase.LoginInput
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Login(ctx, req)
	if err != nil {
		h.logFailure(ctx, "login failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	me, err := h.authService.Me(ctx, principal.UserID)
	if err != nil {
		h.logFailure(ctx, "get current user failed", err, "user_id", principal.UserID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, meResponse{Success: true, User: me})
}
