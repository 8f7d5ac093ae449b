package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-hub/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the built-in sample matches and players into an empty
// database. Tables that already hold rows are left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	empty, err := tableEmpty(ctx, db, matchesTable)
	if err != nil {
		return err
	}
	if empty {
		if err := NewMatchRepository(db).Upsert(ctx, memory.SeedMatches()); err != nil {
			return fmt.Errorf("seed matches: %w", err)
		}
	}

	empty, err = tableEmpty(ctx, db, playersTable)
	if err != nil {
		return err
	}
	if empty {
		if err := NewPlayerRepository(db).Upsert(ctx, memory.SeedPlayers()); err != nil {
			return fmt.Errorf("seed players: %w", err)
		}
	}

	return nil
}

func tableEmpty(ctx context.Context, db *sqlx.DB, table string) (bool, error) {
	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM `+table+`)`); err != nil {
		return false, fmt.Errorf("check %s for bootstrap seed: %w", table, err)
	}
	return !exists, nil
}
