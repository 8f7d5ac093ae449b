package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		status  string
		message string
	}{
		{err: fmt.Errorf("%w: match not found", usecase.ErrNotFound), code: 404, status: "NOT_FOUND", message: "match not found"},
		{err: fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), code: 400, status: "INVALID_ARGUMENT", message: "bad payload"},
		{err: usecase.ErrUnauthorized, code: 401, status: "UNAUTHENTICATED", message: "unauthorized"},
		{err: fmt.Errorf("%w: admin access required", usecase.ErrForbidden), code: 403, status: "PERMISSION_DENIED", message: "admin access required"},
		{err: fmt.Errorf("%w: email already registered", usecase.ErrConflict), code: 409, status: "ALREADY_EXISTS", message: "email already registered"},
		{err: fmt.Errorf("%w: AI engine unavailable", usecase.ErrDependencyUnavailable), code: 503, status: "UNAVAILABLE", message: "AI engine unavailable"},
		{err: errors.New("pq: connection refused on 10.0.0.3"), code: 500, status: "INTERNAL", message: "internal server error"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, tt.err)

		if rec.Code != tt.code {
			t.Fatalf("%v: expected status %d, got %d", tt.err, tt.code, rec.Code)
		}
		body := decodeBody(t, rec)
		if body["success"] != false {
			t.Fatalf("%v: expected success=false", tt.err)
		}
		if body["status"] != tt.status {
			t.Fatalf("%v: expected status %s, got %v", tt.err, tt.status, body["status"])
		}
		if body["error"] != tt.message {
			t.Fatalf("%v: expected message %q, got %v", tt.err, tt.message, body["error"])
		}
		if code, _ := body["code"].(float64); int(code) != tt.code {
			t.Fatalf("%v: expected code %d, got %v", tt.err, tt.code, body["code"])
		}
	}
}
