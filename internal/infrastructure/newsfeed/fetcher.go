package newsfeed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultMaxBodySize = 4 << 20
	maxRedirects       = 3
)

var errFetchTransient = crerr.New("news source transient failure")

type FetcherConfig struct {
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int
}

// Fetcher downloads source pages with a bounded timeout and a browser
// User-Agent.
type Fetcher struct {
	client    *fasthttp.Client
	timeout   time.Duration
	userAgent string
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = defaultMaxBodySize
	}

	return &Fetcher{
		client: &fasthttp.Client{
			Name:                     cfg.UserAgent,
			NoDefaultUserAgentHeader: true,
			MaxResponseBodySize:      cfg.MaxBodySize,
			ReadTimeout:              cfg.Timeout,
			WriteTimeout:             cfg.Timeout,
		},
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
	}
}

// Fetch returns the body of a 2xx response, following a few redirects.
// Timeouts, transport errors and 5xx/429 responses are marked transient.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	deadline := time.Now().Add(f.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	target := rawURL
	for hop := 0; ; hop++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req.Reset()
		resp.Reset()
		req.SetRequestURI(target)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.SetUserAgent(f.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		if err := f.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%w: get %s: %v", errFetchTransient, target, err)
		}

		status := resp.StatusCode()
		switch {
		case status >= 200 && status < 300:
			return append([]byte(nil), resp.Body()...), nil
		case fasthttp.StatusCodeIsRedirect(status):
			if hop >= maxRedirects {
				return nil, fmt.Errorf("get %s: too many redirects", rawURL)
			}
			next, err := resolveRedirect(target, string(resp.Header.Peek(fasthttp.HeaderLocation)))
			if err != nil {
				return nil, fmt.Errorf("get %s: %w", target, err)
			}
			target = next
		case status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError:
			return nil, fmt.Errorf("%w: get %s: status=%d", errFetchTransient, target, status)
		default:
			return nil, fmt.Errorf("get %s: status=%d", target, status)
		}
	}
}

func resolveRedirect(base, location string) (string, error) {
	if strings.TrimSpace(location) == "" {
		return "", fmt.Errorf("redirect without location")
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	next, err := baseURL.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parse redirect location: %w", err)
	}
	return next.String(), nil
}

// IsTransient reports whether err is worth counting against a source breaker.
func IsTransient(err error) bool {
	return crerr.Is(err, errFetchTransient)
}
