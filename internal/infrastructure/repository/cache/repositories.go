package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/player"
	basecache "github.com/riskibarqy/football-hub/internal/platform/cache"
)

const (
	matchKeyPrefix  = "match:"
	playerKeyPrefix = "player:"
)

// MatchRepository is a read-through decorator. Writes made through it drop
// every cached match entry; writes from other processes show up within the
// store TTL.
type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, query match.ListQuery) ([]match.Match, error) {
	key := matchKeyPrefix + "list:" + matchFilterKey(query.Filter) + ":" + query.SortField + ":" +
		strconv.FormatBool(query.Descending) + ":" + strconv.Itoa(query.Page.Limit) + ":" + strconv.Itoa(query.Page.Skip)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, query)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) Count(ctx context.Context, filter match.Filter) (int, error) {
	v, err := r.cache.GetOrLoad(ctx, matchKeyPrefix+"count:"+matchFilterKey(filter), func(ctx context.Context) (any, error) {
		return r.next.Count(ctx, filter)
	})
	if err != nil {
		return 0, err
	}

	total, _ := v.(int)
	return total, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, matchKeyPrefix+"id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, items []match.Match) error {
	if err := r.next.Upsert(ctx, items); err != nil {
		return err
	}
	// Any write can move a match between filtered pages, so list and count
	// entries go along with the ids.
	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

// Filter parts are quoted so a separator inside a value cannot alias
// another filter.
func matchFilterKey(filter match.Filter) string {
	return strconv.Quote(string(filter.Status)) + "|" + strconv.Quote(strings.ToLower(strings.TrimSpace(filter.Team)))
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]player.Summary, error) {
	key := playerKeyPrefix + "search:" + strings.ToLower(strings.TrimSpace(query)) + ":" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		return append([]player.Summary(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Summary)
	return append([]player.Summary(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerKeyPrefix+"id:"+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) List(ctx context.Context, query player.ListQuery) ([]player.Player, error) {
	key := playerKeyPrefix + "list:" + playerFilterKey(query.Filter) + ":" + string(query.Sort) + ":" +
		strconv.Itoa(query.Limit) + ":" + strconv.Itoa(query.Skip)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, query)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int, error) {
	v, err := r.cache.GetOrLoad(ctx, playerKeyPrefix+"count:"+playerFilterKey(filter), func(ctx context.Context) (any, error) {
		return r.next.Count(ctx, filter)
	})
	if err != nil {
		return 0, err
	}

	total, _ := v.(int)
	return total, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, items []player.Player) error {
	if err := r.next.Upsert(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func playerFilterKey(filter player.Filter) string {
	return strconv.Quote(filter.Position) + "|" + strconv.Quote(filter.Nationality)
}
