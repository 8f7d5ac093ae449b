package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	const site = "https://football-hub.example.com"

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantMethods bool
	}{
		{name: "configured origin", allowed: []string{site}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, wantOrigin: site, wantMethods: true},
		{name: "wildcard", allowed: []string{" * "}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, wantOrigin: "*", wantMethods: true},
		{name: "unknown origin", allowed: []string{site}, method: http.MethodGet, origin: "https://evil.example.com", wantStatus: http.StatusOK},
		{name: "no origin header", allowed: []string{site}, method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "preflight", allowed: []string{site}, method: http.MethodOptions, origin: site, wantStatus: http.StatusNoContent, wantOrigin: site, wantMethods: true},
		{name: "preflight from unknown origin", allowed: []string{site}, method: http.MethodOptions, origin: "https://evil.example.com", wantStatus: http.StatusNoContent},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/news", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rec.Header().Get("Access-Control-Allow-Methods") != "")
			if tt.wantOrigin == site {
				assert.Equal(t, "Origin", rec.Header().Get("Vary"))
			}
		})
	}
}
