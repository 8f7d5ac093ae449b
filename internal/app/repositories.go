package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/player"
	"github.com/riskibarqy/football-hub/internal/domain/user"
	cacherepo "github.com/riskibarqy/football-hub/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-hub/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-hub/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Repositories groups the storage ports used by the services.
type Repositories struct {
	Matches match.Repository
	Players player.Repository
	Users   user.Repository

	db *sqlx.DB
}

// NewRepositories opens PostgreSQL when DATABASE_URL is set and falls back to
// the seeded in-memory store otherwise.
func NewRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var repos Repositories
	if cfg.DBURL == "" {
		logger.Warn("DATABASE_URL empty, using in-memory store with seed data")
		repos.Matches = memory.NewMatchRepository(memory.SeedMatches())
		repos.Players = memory.NewPlayerRepository(memory.SeedPlayers())
		repos.Users = memory.NewUserRepository()
	} else {
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("database connected", "db_name", databaseName(cfg.DBURL))
		if cfg.AppEnv == config.EnvDev {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		repos.db = db
		repos.Matches = postgres.NewMatchRepository(db)
		repos.Players = postgres.NewPlayerRepository(db)
		repos.Users = postgres.NewUserRepository(db)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.Matches = cacherepo.NewMatchRepository(repos.Matches, store)
		repos.Players = cacherepo.NewPlayerRepository(repos.Players, store)
	}

	return &repos, nil
}

func (r *Repositories) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// OpenDB connects through otelsqlx so every statement gets a span.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
