package newsfeed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/platform/clock"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureFetcher struct {
	files map[string]string
	err   error
	calls int
}

func (f *fixtureFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	name, ok := f.files[url]
	if !ok {
		return nil, fmt.Errorf("no fixture for %s", url)
	}
	return os.ReadFile(filepath.Join("testdata", name))
}

func newFixtureFetcher() *fixtureFetcher {
	return &fixtureFetcher{files: map[string]string{
		BBCSport().URL:  "bbc_football.html",
		SkySports().URL: "sky_news.html",
	}}
}

var fixtureNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestHTMLSource_BBCSport(t *testing.T) {
	t.Parallel()

	src := NewHTMLSource(BBCSport(), newFixtureFetcher(), clock.NewFake(fixtureNow), nil)
	got, err := src.FetchCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []news.Candidate{
		{
			Title: "Arsenal complete signing of Spanish midfielder",
			Link:  "https://www.bbc.com/sport/football/articles/c0001",
			Time:  "2h ago",
		},
		{
			Title: "Live: Premier League reaction and analysis",
			Link:  "https://www.bbc.co.uk/sport/football/live/c0002",
			Time:  "Recently",
		},
		{
			Title: "Manager sacked after third straight defeat",
			Link:  "https://www.bbc.com",
			Time:  "Recently",
		},
		{
			Title: "Champions League last-16 draw in full",
			Link:  "https://www.bbc.com/sport/football/c0005",
			Time:  "2/20/2025",
		},
	}, got)
	assert.Equal(t, news.SourceBBCSport, src.Name())
}

func TestHTMLSource_SkySports(t *testing.T) {
	t.Parallel()

	src := NewHTMLSource(SkySports(), newFixtureFetcher(), clock.NewFake(fixtureNow), nil)
	got, err := src.FetchCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []news.Candidate{
		{
			Title: "Injury blow for champions ahead of derby",
			Link:  "https://www.skysports.com/football/news/11095/1001/injury-blow-for-champions",
			Time:  "15 minutes ago",
		},
		{
			Title: "Transfer Centre: latest rumours",
			Link:  "https://www.skysports.com/football/news/11095/1002/transfer-centre",
			Time:  "Recently",
		},
		{
			Title: "Title race goes to the final day",
			Link:  "https://www.skysports.com",
			Time:  "1 hour ago",
		},
	}, got)
}

func TestHTMLSource_UnrelatedMarkupYieldsNothing(t *testing.T) {
	t.Parallel()

	fetcher := &fixtureFetcher{files: map[string]string{BBCSport().URL: "sky_news.html"}}
	got, err := NewHTMLSource(BBCSport(), fetcher, nil, nil).FetchCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHTMLSource_BreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(fixtureNow)
	breaker := resilience.NewCircuitBreaker(2, time.Minute, 1).WithClock(clk)
	fetcher := &fixtureFetcher{err: fmt.Errorf("%w: connection reset", errFetchTransient)}
	src := NewHTMLSource(SkySports(), fetcher, clk, breaker)

	for i := 0; i < 2; i++ {
		_, err := src.FetchCandidates(context.Background())
		require.Error(t, err)
		assert.True(t, IsTransient(err))
	}

	_, err := src.FetchCandidates(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable))
	assert.Equal(t, 2, fetcher.calls)

	clk.Advance(time.Minute)
	fetcher.err = nil
	fetcher.files = map[string]string{SkySports().URL: "sky_news.html"}
	got, err := src.FetchCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAbsoluteLink(t *testing.T) {
	t.Parallel()

	origin := "https://www.bbc.com"
	assert.Equal(t, origin, absoluteLink(origin, ""))
	assert.Equal(t, origin+"/a", absoluteLink(origin, "/a"))
	assert.Equal(t, origin+"/a", absoluteLink(origin, "a"))
	assert.Equal(t, "http://x.test/a", absoluteLink(origin, "http://x.test/a"))
}
