package newsfeed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/platform/clock"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// PageFetcher downloads a page body.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor turns a parsed page into raw headline candidates.
type Extractor func(doc *goquery.Document, origin string, now time.Time) []news.Candidate

// Definition describes one scraped site.
type Definition struct {
	Name    string
	URL     string
	Origin  string
	Extract Extractor
}

func BBCSport() Definition {
	return Definition{
		Name:    news.SourceBBCSport,
		URL:     "https://www.bbc.com/sport/football",
		Origin:  "https://www.bbc.com",
		Extract: extractBBCSport,
	}
}

func SkySports() Definition {
	return Definition{
		Name:    news.SourceSkySports,
		URL:     "https://www.skysports.com/football/news",
		Origin:  "https://www.skysports.com",
		Extract: extractSkySports,
	}
}

// HTMLSource fetches one site and extracts its headlines.
type HTMLSource struct {
	def     Definition
	fetcher PageFetcher
	clock   clock.Clock
	breaker *resilience.CircuitBreaker
}

// NewHTMLSource builds a source; a nil breaker disables circuit breaking.
func NewHTMLSource(def Definition, fetcher PageFetcher, clk clock.Clock, breaker *resilience.CircuitBreaker) *HTMLSource {
	if clk == nil {
		clk = clock.System()
	}
	return &HTMLSource{def: def, fetcher: fetcher, clock: clk, breaker: breaker}
}

func (s *HTMLSource) Name() string {
	return s.def.Name
}

func (s *HTMLSource) FetchCandidates(ctx context.Context) ([]news.Candidate, error) {
	var body []byte
	fetch := func() error {
		var err error
		body, err = s.fetcher.Fetch(ctx, s.def.URL)
		return err
	}

	var err error
	if s.breaker != nil {
		err = s.breaker.Do(fetch, IsTransient)
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return nil, fmt.Errorf("%w: %s circuit open", usecase.ErrDependencyUnavailable, s.def.Name)
		}
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.def.Name, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s markup: %w", s.def.Name, err)
	}

	return s.def.Extract(doc, s.def.Origin, s.clock.Now()), nil
}

// DefaultSources returns the configured sites in their fixed output order.
func DefaultSources(fetcher PageFetcher, clk clock.Clock, breakerCfg resilience.BreakerConfig) []*HTMLSource {
	defs := []Definition{BBCSport(), SkySports()}
	out := make([]*HTMLSource, 0, len(defs))
	for _, def := range defs {
		var breaker *resilience.CircuitBreaker
		if breakerCfg.Enabled {
			breaker = resilience.NewBreaker(breakerCfg).WithClock(clk)
		}
		out = append(out, NewHTMLSource(def, fetcher, clk, breaker))
	}
	return out
}

func extractBBCSport(doc *goquery.Document, origin string, now time.Time) []news.Candidate {
	out := make([]news.Candidate, 0, news.MaxPerSource)
	doc.Find(".ssrcss-1mrs5ns-Stack").EachWithBreak(func(i int, block *goquery.Selection) bool {
		if i >= news.MaxPerSource {
			return false
		}
		title := strings.TrimSpace(block.Find("h2, h3").First().Text())
		href, _ := block.Find("a[href]").First().Attr("href")
		published, _ := block.Find("time[datetime]").First().Attr("datetime")
		if acceptTitle(title) {
			out = append(out, news.Candidate{
				Title: title,
				Link:  absoluteLink(origin, href),
				Time:  news.ParseRecency(strings.TrimSpace(published), now),
			})
		}
		return true
	})
	return out
}

func extractSkySports(doc *goquery.Document, origin string, _ time.Time) []news.Candidate {
	out := make([]news.Candidate, 0, news.MaxPerSource)
	doc.Find(".news-list__item").EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= news.MaxPerSource {
			return false
		}
		title := strings.TrimSpace(item.Find(".news-list__headline").First().Text())
		href, _ := item.Find("a[href]").First().Attr("href")
		label := strings.TrimSpace(item.Find(".label__timestamp").First().Text())
		if label == "" {
			label = news.RecentlyLabel
		}
		if acceptTitle(title) {
			out = append(out, news.Candidate{
				Title: title,
				Link:  absoluteLink(origin, href),
				Time:  label,
			})
		}
		return true
	})
	return out
}

func acceptTitle(title string) bool {
	return utf8.RuneCountInString(title) >= news.MinTitleLength
}

func absoluteLink(origin, href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return origin
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "/"):
		return origin + href
	default:
		return origin + "/" + href
	}
}
