package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
)

const newsCacheKey = "news:latest"

// NewsSource yields raw headlines from one site.
type NewsSource interface {
	Name() string
	FetchCandidates(ctx context.Context) ([]news.Candidate, error)
}

var errNoHeadlines = errors.New("no headlines scraped")

// NewsService aggregates headlines from its sources in a fixed order and
// substitutes the fallback set when nothing usable comes back.
type NewsService struct {
	sources []NewsSource
	cache   *cache.Store
	logger  *logging.Logger
}

// NewNewsService builds the aggregator. A nil store disables reuse of
// successful scrapes.
func NewNewsService(sources []NewsSource, store *cache.Store, logger *logging.Logger) *NewsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NewsService{
		sources: sources,
		cache:   store,
		logger:  logger,
	}
}

// List never fails: source failures only shrink the result and an empty
// result is replaced by the fallback set.
func (s *NewsService) List(ctx context.Context) []news.Article {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.List")
	defer span.End()

	if s.cache == nil {
		if articles := s.scrape(ctx); len(articles) > 0 {
			return articles
		}
		return news.Fallback()
	}

	value, err := s.cache.GetOrLoad(ctx, newsCacheKey, func(ctx context.Context) (any, error) {
		articles := s.scrape(ctx)
		if len(articles) == 0 {
			return nil, errNoHeadlines
		}
		return articles, nil
	})
	if err != nil {
		if !errors.Is(err, errNoHeadlines) {
			s.logger.WarnContext(ctx, "load news failed", "error", err)
		}
		return news.Fallback()
	}

	articles, ok := value.([]news.Article)
	if !ok || len(articles) == 0 {
		return news.Fallback()
	}
	return append([]news.Article(nil), articles...)
}

// Get resolves an article id against the latest headlines and the fallback
// set and synthesizes its long-form body.
func (s *NewsService) Get(ctx context.Context, articleID string) (news.EnrichedArticle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Get")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.EnrichedArticle{}, fmt.Errorf("%w: article id is required", ErrInvalidInput)
	}

	if article, ok := news.FindByID(s.List(ctx), articleID); ok {
		return news.Enrich(article), nil
	}
	if article, ok := news.FindByID(news.Fallback(), articleID); ok {
		return news.Enrich(article), nil
	}
	return news.EnrichedArticle{}, fmt.Errorf("%w: article not found", ErrNotFound)
}

func (s *NewsService) scrape(ctx context.Context) []news.Article {
	perSource := iter.Map(s.sources, func(src *NewsSource) []news.Article {
		return s.fetchSource(ctx, *src)
	})

	out := make([]news.Article, 0, news.MaxArticles)
	for _, articles := range perSource {
		for _, article := range articles {
			if len(out) == news.MaxArticles {
				return out
			}
			out = append(out, article)
		}
	}
	return out
}

func (s *NewsService) fetchSource(ctx context.Context, src NewsSource) []news.Article {
	candidates, err := src.FetchCandidates(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "news source failed", "source", src.Name(), "error", err)
		return nil
	}

	out := make([]news.Article, 0, len(candidates))
	for _, c := range candidates {
		if len(out) == news.MaxPerSource {
			break
		}
		out = append(out, news.NewArticle(src.Name(), c))
	}
	return out
}
