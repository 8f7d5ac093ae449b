package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/domain/user"
	"github.com/riskibarqy/football-hub/internal/infrastructure/aiengine"
	"github.com/riskibarqy/football-hub/internal/infrastructure/auth"
	"github.com/riskibarqy/football-hub/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-hub/internal/platform/id"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router http.Handler
	tokens *auth.JWTManager
}

func newTestServer(t *testing.T, aiEngineURL string) *testServer {
	t.Helper()

	logger := logging.NewNop()
	tokens, err := auth.NewJWTManager("test-secret", time.Hour, nil)
	if err != nil {
		t.Fatalf("new jwt manager: %v", err)
	}

	users := memory.NewUserRepository(
		user.User{ID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: user.RoleAdmin},
		user.User{ID: "user-1", Email: "user@example.com", Name: "User", Role: user.RoleUser},
	)
	authService := usecase.NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), tokens, id.NewUUIDGenerator())
	engine := aiengine.NewClient(aiengine.ClientConfig{
		BaseURL:        aiEngineURL,
		Timeout:        time.Second,
		Logger:         logger,
		CircuitBreaker: resilience.BreakerConfig{Enabled: false},
	})

	handler := NewHandler(
		authService,
		usecase.NewMatchService(memory.NewMatchRepository(memory.SeedMatches())),
		usecase.NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers())),
		usecase.NewNewsService(nil, nil, logger),
		usecase.NewStatsService(nil),
		usecase.NewAdminService(engine),
		usecase.NewPredictionService(engine),
		"test",
		logger,
	)

	return &testServer{
		router: NewRouter(handler, tokens, authService, logger, []string{"*"}),
		tokens: tokens,
	}
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()

	token, err := s.tokens.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func (s *testServer) do(method, path, token string, body []byte, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthIndexAndNotFound(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	rec := srv.do(http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK || decodeBody(t, rec)["status"] != "OK" {
		t.Fatalf("unexpected health response: %d %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(http.MethodGet, "/api", "", nil)
	if rec.Code != http.StatusOK || decodeBody(t, rec)["version"] != "test" {
		t.Fatalf("unexpected index response: %d %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(http.MethodGet, "/nope", "", nil)
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "route not found" {
		t.Fatalf("unexpected not found response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_UnauthorizedBodiesAreUniform(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	missing := srv.do(http.MethodGet, "/api/matches", "", nil)
	forged := srv.do(http.MethodGet, "/api/matches", "not-a-jwt", nil)
	badScheme := srv.do(http.MethodGet, "/api/matches", "", nil, "Authorization", "Basic abc")

	for _, rec := range []*httptest.ResponseRecorder{missing, forged, badScheme} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	}
	if missing.Body.String() != forged.Body.String() || forged.Body.String() != badScheme.Body.String() {
		t.Fatalf("401 bodies differ:\n%s\n%s\n%s", missing.Body.String(), forged.Body.String(), badScheme.Body.String())
	}
}

func TestRouter_SignupThenListMatches(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	rec := srv.do(http.MethodPost, "/auth/signup", "", []byte(`{"email":"new@example.com","password":"secret1","name":"New"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	signup := decodeBody(t, rec)
	token, _ := signup["token"].(string)
	if token == "" {
		t.Fatalf("signup returned no token: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("signup response leaked password data: %s", rec.Body.String())
	}

	rec = srv.do(http.MethodPost, "/auth/signup", "", []byte(`{"email":"NEW@example.com","password":"secret1","name":"Again"}`))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d", rec.Code)
	}

	rec = srv.do(http.MethodGet, "/api/matches?status=upcoming", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list matches: expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	matches := data["matches"].([]any)
	if len(matches) != 2 {
		t.Fatalf("expected 2 upcoming matches, got %d", len(matches))
	}
	first := matches[0].(map[string]any)
	if first["status"] != "scheduled" || first["home_logo"] == "" {
		t.Fatalf("unexpected match payload: %v", first)
	}
	pagination := data["pagination"].(map[string]any)
	if pagination["total"] != float64(2) || pagination["hasMore"] != false {
		t.Fatalf("unexpected pagination: %v", pagination)
	}

	for _, path := range []string{
		"/api/matches?status=postponed",
		"/api/matches?limit=abc",
		"/api/matches?limit=0",
		"/api/matches?skip=-1",
		"/api/matches?sort=kickoff",
	} {
		if rec := srv.do(http.MethodGet, path, token, nil); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}

	rec = srv.do(http.MethodGet, "/api/matches/does-not-exist", token, nil)
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "match not found" {
		t.Fatalf("unexpected missing match response: %d %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(http.MethodGet, "/api/matches/teams/arsenal?limit=2", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("team matches: expected 200, got %d", rec.Code)
	}
	teamData := decodeBody(t, rec)["data"].(map[string]any)
	if teamData["team"] != "arsenal" || len(teamData["matches"].([]any)) != 2 {
		t.Fatalf("unexpected team matches: %v", teamData)
	}
}

func TestRouter_LoginAndMe(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	srv.do(http.MethodPost, "/auth/signup", "", []byte(`{"email":"fan@example.com","password":"secret1","name":"Fan"}`))

	rec := srv.do(http.MethodPost, "/auth/login", "", []byte(`{"email":"fan@example.com","password":"wrong-one"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}

	rec = srv.do(http.MethodPost, "/auth/login", "", []byte(`{"email":"fan@example.com","password":"secret1"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)

	rec = srv.do(http.MethodGet, "/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}
	me := decodeBody(t, rec)["user"].(map[string]any)
	if me["email"] != "fan@example.com" || me["role"] != "user" {
		t.Fatalf("unexpected me payload: %v", me)
	}

	rec = srv.do(http.MethodPost, "/auth/login", "", []byte(`{"email":`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", rec.Code)
	}
}

func TestRouter_PlayersRoutes(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")
	token := srv.token(t, "user-1")

	rec := srv.do(http.MethodGet, "/api/players/search?query=a", token, nil)
	if rec.Code != http.StatusOK || len(decodeBody(t, rec)["data"].([]any)) != 0 {
		t.Fatalf("short search: unexpected response %d %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(http.MethodGet, "/api/players/search?query=saka", token, nil)
	results := decodeBody(t, rec)["data"].([]any)
	if len(results) != 1 || results[0].(map[string]any)["id"] != "bukayo-saka" {
		t.Fatalf("unexpected search results: %v", results)
	}

	rec = srv.do(http.MethodGet, "/api/players?sort=rating&limit=1", token, nil)
	data := decodeBody(t, rec)["data"].(map[string]any)
	players := data["players"].([]any)
	if len(players) != 1 || players[0].(map[string]any)["player_id"] != "erling-haaland" {
		t.Fatalf("unexpected player listing: %v", players)
	}

	rec = srv.do(http.MethodGet, "/api/players/nobody", token, nil)
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "player not found" {
		t.Fatalf("unexpected missing player response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_PublicNewsStatsAndLogos(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	rec := srv.do(http.MethodGet, "/api/news", "", nil)
	body := decodeBody(t, rec)
	articles := body["data"].([]any)
	if rec.Code != http.StatusOK || len(articles) != news.MaxArticles || body["timestamp"] == nil {
		t.Fatalf("unexpected news listing: %d %s", rec.Code, rec.Body.String())
	}

	articleID := articles[0].(map[string]any)["id"].(string)
	rec = srv.do(http.MethodGet, "/api/news/"+articleID, "", nil)
	article := decodeBody(t, rec)["data"].(map[string]any)
	if rec.Code != http.StatusOK || article["content"] == "" || article["author"] != "Football News Team" {
		t.Fatalf("unexpected article: %d %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(http.MethodGet, "/api/news/unknown-id", "", nil)
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "article not found" {
		t.Fatalf("unexpected missing article response: %d %s", rec.Code, rec.Body.String())
	}

	first := decodeBody(t, srv.do(http.MethodGet, "/api/stats/top-scorers", "", nil))
	second := decodeBody(t, srv.do(http.MethodGet, "/api/stats/top-scorers", "", nil))
	if first["cached"] != false || second["cached"] != true {
		t.Fatalf("unexpected cache flags: first=%v second=%v", first["cached"], second["cached"])
	}
	if _, err := time.Parse(time.RFC3339, second["lastUpdated"].(string)); err != nil {
		t.Fatalf("lastUpdated is not RFC 3339: %v", second["lastUpdated"])
	}

	rec = srv.do(http.MethodGet, "/api/teams/Arsenal/logo", "", nil)
	logo := decodeBody(t, rec)["data"].(map[string]any)
	if logo["team"] != "Arsenal" || logo["colors"] == nil {
		t.Fatalf("unexpected logo payload: %v", logo)
	}
	rec = srv.do(http.MethodGet, "/api/teams/Nowhere%20Rovers/logo", "", nil)
	logo = decodeBody(t, rec)["data"].(map[string]any)
	if !strings.HasPrefix(logo["logo"].(string), "data:image/svg+xml") || logo["colors"] != nil {
		t.Fatalf("unexpected placeholder payload: %v", logo)
	}
}

func TestRouter_AdminRequiresStoredRole(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/trigger-scrape":
			_, _ = w.Write([]byte(`{"status":"started"}`))
		case "/health":
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer engine.Close()

	srv := newTestServer(t, engine.URL)

	rec := srv.do(http.MethodPost, "/api/admin/refresh-data", srv.token(t, "user-1"), nil, "x-admin", "true")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin with x-admin header: expected 403, got %d", rec.Code)
	}

	rec = srv.do(http.MethodPost, "/api/admin/refresh-data", "", nil, "x-admin", "true")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous admin call: expected 401, got %d", rec.Code)
	}

	adminToken := srv.token(t, "admin-1")
	rec = srv.do(http.MethodPost, "/api/admin/refresh-data", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin refresh: expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	refresh := decodeBody(t, rec)
	if refresh["aiEngineResponse"].(map[string]any)["status"] != "started" {
		t.Fatalf("unexpected refresh payload: %v", refresh)
	}

	rec = srv.do(http.MethodGet, "/api/admin/status", adminToken, nil)
	if rec.Code != http.StatusOK || decodeBody(t, rec)["aiEngine"].(map[string]any)["status"] != "healthy" {
		t.Fatalf("unexpected status response: %d %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(http.MethodGet, "/api/predictions/match?home_team=Arsenal&away_team=Chelsea", adminToken, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("prediction against 404 upstream: expected 503, got %d", rec.Code)
	}
	rec = srv.do(http.MethodGet, "/api/predictions/match?home_team=Arsenal", adminToken, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("prediction without away team: expected 400, got %d", rec.Code)
	}
}

func TestRouter_AdminStatusWhenEngineDown(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	rec := srv.do(http.MethodGet, "/api/admin/status", srv.token(t, "admin-1"), nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["error"] != "AI engine unavailable" {
		t.Fatalf("unexpected 503 body: %v", body)
	}
}

func TestRouter_SignupRejectsPasswordOverBcryptLimit(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	body := []byte(`{"email":"long@example.com","password":"` + strings.Repeat("x", 100) + `","name":"Long"}`)
	rec := srv.do(http.MethodPost, "/auth/signup", "", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "at most 72 bytes") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
