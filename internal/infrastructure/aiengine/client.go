package aiengine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 5 * time.Second

	maxResponseBody = 2 << 20
)

var errAIEngineTransient = crerr.New("ai engine transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client talks to the external prediction/scraping service. Upstream bodies are
// passed through as decoded JSON without interpretation.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = DefaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	breakerCfg := cfg.CircuitBreaker.Normalized()
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// TriggerScrape asks the engine to refresh its scraped data.
func (c *Client) TriggerScrape(ctx context.Context) (any, error) {
	return c.get(ctx, "/trigger-scrape", nil)
}

func (c *Client) Health(ctx context.Context) (any, error) {
	return c.get(ctx, "/health", nil)
}

func (c *Client) PredictMatch(ctx context.Context, homeTeam, awayTeam string) (any, error) {
	query := url.Values{}
	query.Set("home_team", homeTeam)
	query.Set("away_team", awayTeam)
	return c.get(ctx, "/predict", query)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	call := func() error {
		var err error
		raw, err = c.execute(ctx, fullURL)
		return err
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Do(call, isTransient)
	} else {
		err = call()
	}
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "ai engine circuit breaker rejected request", "path", path, "state", c.breaker.State())
		} else {
			c.logger.WarnContext(ctx, "ai engine request failed", "path", path, "error", err)
		}
		return nil, fmt.Errorf("%w: AI engine unavailable", usecase.ErrDependencyUnavailable)
	}

	return decodeBody(raw), nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errAIEngineTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errAIEngineTransient, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status=%d", errAIEngineTransient, resp.StatusCode)
	default:
		return nil, fmt.Errorf("ai engine status=%d", resp.StatusCode)
	}
}

// decodeBody keeps non-JSON payloads as plain text.
func decodeBody(raw []byte) any {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	var out any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return string(raw)
	}
	return out
}

func isTransient(err error) bool {
	return crerr.Is(err, errAIEngineTransient)
}
