package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/infrastructure/aiengine"
	"github.com/riskibarqy/football-hub/internal/infrastructure/auth"
	"github.com/riskibarqy/football-hub/internal/infrastructure/newsfeed"
	"github.com/riskibarqy/football-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/clock"
	idgen "github.com/riskibarqy/football-hub/internal/platform/id"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup releases the database and redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	clk := clock.System()

	repos, err := NewRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := closerChain{repos.Close}

	tokens, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL, clk)
	if err != nil {
		_ = cleanup.Close()
		return nil, nil, fmt.Errorf("build jwt manager: %w", err)
	}
	authSvc := usecase.NewAuthService(repos.Users, auth.NewBcryptHasher(0), tokens, idgen.NewUUIDGenerator())

	fetcher := newsfeed.NewFetcher(newsfeed.FetcherConfig{
		Timeout:   cfg.NewsFetchTimeout,
		UserAgent: cfg.NewsUserAgent,
	})
	htmlSources := newsfeed.DefaultSources(fetcher, clk, resilience.DefaultBreakerConfig())
	sources := make([]usecase.NewsSource, 0, len(htmlSources))
	for _, src := range htmlSources {
		sources = append(sources, src)
	}
	var newsStore *cache.Store
	if cfg.NewsCacheTTL > 0 {
		newsStore = cache.NewStoreWithClock(cfg.NewsCacheTTL, clk)
	}

	snapshots, closeSnapshots, err := newSnapshotStore(ctx, cfg, logger)
	if err != nil {
		_ = cleanup.Close()
		return nil, nil, err
	}
	cleanup = append(cleanup, closeSnapshots)
	statsCache := cache.NewTimedCache(snapshots, cfg.StatsCacheTTL, clk, logger)

	engine := aiengine.NewClient(aiengine.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.AIEngineTimeout},
		BaseURL:    cfg.AIEngineURL,
		Timeout:    cfg.AIEngineTimeout,
		Logger:     logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.AIEngineCircuitEnabled,
			FailureThreshold: cfg.AIEngineCircuitFailureCount,
			OpenTimeout:      cfg.AIEngineCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AIEngineCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		authSvc,
		usecase.NewMatchService(repos.Matches),
		usecase.NewPlayerService(repos.Players),
		usecase.NewNewsService(sources, newsStore, logger),
		usecase.NewStatsService(statsCache),
		usecase.NewAdminService(engine),
		usecase.NewPredictionService(engine),
		cfg.ServiceVersion,
		logger,
	)
	router := httpapi.NewRouter(handler, tokens, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup.Close, nil
}

// newSnapshotStore picks redis when REDIS_URL is set, otherwise a process-local map.
func newSnapshotStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (cache.SnapshotStore, func() error, error) {
	if cfg.RedisURL == "" {
		logger.Info("stats cache backend", "backend", "memory")
		return cache.NewMemorySnapshotStore(), func() error { return nil }, nil
	}

	store, err := cache.NewRedisSnapshotStore(ctx, cfg.RedisURL, cache.RedisSnapshotConfig{
		Retention: 2 * cfg.StatsCacheTTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect stats cache redis: %w", err)
	}
	logger.Info("stats cache backend", "backend", "redis")
	return store, store.Close, nil
}

type closerChain []func() error

// Close runs closers in reverse order and returns the first error.
func (c closerChain) Close() error {
	var first error
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] == nil {
			continue
		}
		if err := c[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
