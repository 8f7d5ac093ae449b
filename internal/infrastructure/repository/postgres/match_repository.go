package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	qb "github.com/riskibarqy/football-hub/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, query match.ListQuery) ([]match.Match, error) {
	column, ok := matchSortColumns[query.SortField]
	if !ok {
		column = matchSortColumns[match.SortDate]
	}
	dir := orderDirection(query.Descending)

	builder := qb.Select(matchSelectColumns...).From(matchesTable).
		Where(matchConditions(query.Filter)...).
		OrderBy(column+" "+dir, "id "+dir).
		Offset(query.Page.Skip)
	if query.Page.Limit > 0 {
		builder = builder.Limit(query.Page.Limit)
	}
	sqlQuery, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *MatchRepository) Count(ctx context.Context, filter match.Filter) (int, error) {
	sqlQuery, args, err := qb.Select("COUNT(*)").From(matchesTable).
		Where(matchConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}

	return total, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	sqlQuery, args, err := qb.Select(matchSelectColumns...).From(matchesTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, sqlQuery, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}

	return item, true, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		model, err := matchToInsertModel(item)
		if err != nil {
			return err
		}
		sqlQuery, args, err := qb.UpsertModel(matchesTable, model, "id", "updated_at")
		if err != nil {
			return fmt.Errorf("build upsert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("upsert match %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert matches tx: %w", err)
	}

	return nil
}

func matchConditions(filter match.Filter) []qb.Condition {
	conds := make([]qb.Condition, 0, 2)
	if filter.Status != "" {
		conds = append(conds, qb.Eq("status", string(filter.Status)))
	}
	if filter.Team != "" {
		conds = append(conds, qb.AnyOf(
			qb.ContainsFold("home_team", filter.Team),
			qb.ContainsFold("away_team", filter.Team),
		))
	}
	return conds
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	item := match.Match{
		ID:        row.ID,
		KickoffAt: row.KickoffAt,
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		HomeScore: nullInt64ToIntPtr(row.HomeScore),
		AwayScore: nullInt64ToIntPtr(row.AwayScore),
		Status:    match.Status(row.Status),
		League:    row.League,
		Season:    row.Season,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := decodeJSON(row.Lineups, &item.Lineups); err != nil {
		return match.Match{}, fmt.Errorf("match %s lineups: %w", row.ID, err)
	}
	if err := decodeJSON(row.Statistics, &item.Statistics); err != nil {
		return match.Match{}, fmt.Errorf("match %s statistics: %w", row.ID, err)
	}
	if err := decodeJSON(row.MatchEvents, &item.Events); err != nil {
		return match.Match{}, fmt.Errorf("match %s events: %w", row.ID, err)
	}

	return item, nil
}

func matchToInsertModel(item match.Match) (matchInsertModel, error) {
	lineups, err := encodeJSON(item.Lineups, "{}")
	if err != nil {
		return matchInsertModel{}, fmt.Errorf("match %s lineups: %w", item.ID, err)
	}
	stats, err := encodeJSON(item.Statistics, "[]")
	if err != nil {
		return matchInsertModel{}, fmt.Errorf("match %s statistics: %w", item.ID, err)
	}
	events, err := encodeJSON(item.Events, "[]")
	if err != nil {
		return matchInsertModel{}, fmt.Errorf("match %s events: %w", item.ID, err)
	}

	return matchInsertModel{
		ID:          item.ID,
		KickoffAt:   item.KickoffAt,
		HomeTeam:    item.HomeTeam,
		AwayTeam:    item.AwayTeam,
		HomeScore:   intPtrToNullInt64(item.HomeScore),
		AwayScore:   intPtrToNullInt64(item.AwayScore),
		Status:      string(item.Status),
		League:      item.League,
		Season:      item.Season,
		Lineups:     lineups,
		Statistics:  stats,
		MatchEvents: events,
	}, nil
}
