package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const internalErrorMessage = "internal server error"

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Status  string `json:"status"`
}

type mappedError struct {
	HTTPStatus int
	Status     string
	Sentinel   error
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, successEnvelope{Success: true, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope{
		Success: false,
		Error:   publicMessage(err, mapped),
		Code:    mapped.HTTPStatus,
		Status:  mapped.Status,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Success: false,
		Error:   internalErrorMessage,
		Code:    http.StatusInternalServerError,
		Status:  "INTERNAL",
	})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Status: "INVALID_ARGUMENT", Sentinel: usecase.ErrInvalidInput}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Status: "UNAUTHENTICATED", Sentinel: usecase.ErrUnauthorized}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{HTTPStatus: http.StatusForbidden, Status: "PERMISSION_DENIED", Sentinel: usecase.ErrForbidden}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Status: "NOT_FOUND", Sentinel: usecase.ErrNotFound}
	case errors.Is(err, usecase.ErrConflict):
		return mappedError{HTTPStatus: http.StatusConflict, Status: "ALREADY_EXISTS", Sentinel: usecase.ErrConflict}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Status: "UNAVAILABLE", Sentinel: usecase.ErrDependencyUnavailable}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Status: "INTERNAL"}
	}
}

// publicMessage strips the sentinel prefix from wrapped errors. Internal
// errors are never echoed.
func publicMessage(err error, mapped mappedError) string {
	if mapped.Sentinel == nil {
		return internalErrorMessage
	}

	msg := err.Error()
	prefix := mapped.Sentinel.Error() + ": "
	if idx := strings.LastIndex(msg, prefix); idx >= 0 {
		msg = msg[idx+len(prefix):]
	}
	if strings.TrimSpace(msg) == "" {
		return mapped.Sentinel.Error()
	}
	return msg
}
