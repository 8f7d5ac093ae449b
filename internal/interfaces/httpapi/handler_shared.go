package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const maxRequestBody = 1 << 20

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure logs server-side failures; client errors are left to the access log.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	if mapError(ctx, err).HTTPStatus < http.StatusInternalServerError {
		return
	}
	h.logger.ErrorContext(ctx, msg, append(args, "error", err)...)
}

func decodeJSONBody(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: invalid JSON body", usecase.ErrInvalidInput)
	}
	return nil
}

// pageQuery holds pagination values parsed from the query string. Absent
// values stay nil so the use case can apply its defaults.
type pageQuery struct {
	Limit *int `validate:"omitempty,min=1,max=500"`
	Skip  *int `validate:"omitempty,min=0"`
}

func (h *Handler) parsePageQuery(ctx context.Context, r *http.Request) (pageQuery, error) {
	var out pageQuery
	var err error
	if out.Limit, err = optionalIntQuery(r, "limit"); err != nil {
		return pageQuery{}, err
	}
	if out.Skip, err = optionalIntQuery(r, "skip"); err != nil {
		return pageQuery{}, err
	}
	if err := h.validator.StructCtx(ctx, out); err != nil {
		return pageQuery{}, fmt.Errorf("%w: limit must be between 1 and %d and skip must be zero or greater", usecase.ErrInvalidInput, usecase.MaxPageLimit)
	}
	return out, nil
}

func optionalIntQuery(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}
