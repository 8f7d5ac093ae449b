package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-hub/internal/domain/player"
	qb "github.com/riskibarqy/football-hub/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]player.Summary, error) {
	needle := strings.TrimSpace(query)
	sqlQuery, args, err := qb.Select(playerSummaryColumns...).From(playersTable).
		Where(qb.AnyOf(
			qb.ContainsFold("name", needle),
			qb.ContainsFold("full_name", needle),
		)).
		OrderBy("name ASC", "player_id ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerSummaryModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Summary{
			ID:       row.PlayerID,
			Name:     row.Name,
			Image:    row.Image,
			Team:     row.ClubName,
			Position: row.Position,
		})
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	sqlQuery, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("player_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, sqlQuery, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	item, err := playerFromRow(row)
	if err != nil {
		return player.Player{}, false, err
	}

	return item, true, nil
}

func (r *PlayerRepository) List(ctx context.Context, query player.ListQuery) ([]player.Player, error) {
	var order string
	switch query.Sort {
	case player.SortByGoals:
		order = "goals DESC"
	case player.SortByRating:
		order = "overall DESC"
	default:
		order = "name ASC"
	}

	sqlQuery, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(playerConditions(query.Filter)...).
		OrderBy(order, "player_id ASC").
		Limit(query.Limit).
		Offset(query.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int, error) {
	sqlQuery, args, err := qb.Select("COUNT(*)").From(playersTable).
		Where(playerConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return total, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		model, err := playerToInsertModel(item)
		if err != nil {
			return err
		}
		sqlQuery, args, err := qb.UpsertModel(playersTable, model, "player_id", "updated_at")
		if err != nil {
			return fmt.Errorf("build upsert player query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("upsert player %s: %w", item.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert players tx: %w", err)
	}

	return nil
}

func playerConditions(filter player.Filter) []qb.Condition {
	conds := make([]qb.Condition, 0, 2)
	if filter.Position != "" {
		conds = append(conds, qb.Eq("position", filter.Position))
	}
	if filter.Nationality != "" {
		conds = append(conds, qb.Eq("nationality", filter.Nationality))
	}
	return conds
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	item := player.Player{
		PlayerID:     row.PlayerID,
		PlayingStyle: row.PlayingStyle,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	columns := []struct {
		name string
		raw  []byte
		out  any
	}{
		{name: "basic_info", raw: row.BasicInfo, out: &item.BasicInfo},
		{name: "current_club", raw: row.CurrentClub, out: &item.CurrentClub},
		{name: "fifa_ratings", raw: row.Ratings, out: &item.Ratings},
		{name: "season_stats", raw: row.SeasonStats, out: &item.SeasonStats},
		{name: "advanced_stats", raw: row.AdvancedStats, out: &item.AdvancedStats},
		{name: "strengths", raw: row.Strengths, out: &item.Strengths},
		{name: "weaknesses", raw: row.Weaknesses, out: &item.Weaknesses},
		{name: "recent_matches", raw: row.RecentMatches, out: &item.RecentMatches},
		{name: "transfer_history", raw: row.TransferHistory, out: &item.TransferHistory},
		{name: "trophies", raw: row.Trophies, out: &item.Trophies},
	}
	for _, col := range columns {
		if err := decodeJSON(col.raw, col.out); err != nil {
			return player.Player{}, fmt.Errorf("player %s %s: %w", row.PlayerID, col.name, err)
		}
	}

	return item, nil
}

func playerToInsertModel(item player.Player) (playerInsertModel, error) {
	model := playerInsertModel{
		PlayerID:     item.PlayerID,
		Name:         item.BasicInfo.Name,
		FullName:     item.BasicInfo.FullName,
		Image:        item.BasicInfo.Image,
		Position:     item.BasicInfo.Position,
		Nationality:  item.BasicInfo.Nationality,
		ClubName:     item.CurrentClub.Name,
		Goals:        item.SeasonStats.Goals,
		Overall:      item.Ratings.Overall,
		PlayingStyle: item.PlayingStyle,
	}

	columns := []struct {
		name  string
		value any
		empty string
		dst   *string
	}{
		{name: "basic_info", value: item.BasicInfo, empty: "{}", dst: &model.BasicInfo},
		{name: "current_club", value: item.CurrentClub, empty: "{}", dst: &model.CurrentClub},
		{name: "fifa_ratings", value: item.Ratings, empty: "{}", dst: &model.Ratings},
		{name: "season_stats", value: item.SeasonStats, empty: "{}", dst: &model.SeasonStats},
		{name: "advanced_stats", value: item.AdvancedStats, empty: "{}", dst: &model.AdvancedStats},
		{name: "strengths", value: item.Strengths, empty: "[]", dst: &model.Strengths},
		{name: "weaknesses", value: item.Weaknesses, empty: "[]", dst: &model.Weaknesses},
		{name: "recent_matches", value: item.RecentMatches, empty: "[]", dst: &model.RecentMatches},
		{name: "transfer_history", value: item.TransferHistory, empty: "[]", dst: &model.TransferHistory},
		{name: "trophies", value: item.Trophies, empty: "[]", dst: &model.Trophies},
	}
	for _, col := range columns {
		encoded, err := encodeJSON(col.value, col.empty)
		if err != nil {
			return playerInsertModel{}, fmt.Errorf("player %s %s: %w", item.PlayerID, col.name, err)
		}
		*col.dst = encoded
	}

	return model, nil
}
