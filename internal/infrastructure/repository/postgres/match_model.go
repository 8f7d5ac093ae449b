package postgres

import (
	"database/sql"
	"time"
)

const matchesTable = "matches"

var matchSelectColumns = []string{
	"id",
	"kickoff_at",
	"home_team",
	"away_team",
	"home_score",
	"away_score",
	"status",
	"league",
	"season",
	"lineups",
	"statistics",
	"match_events",
	"created_at",
	"updated_at",
}

// matchSortColumns maps the public sort keys to columns.
var matchSortColumns = map[string]string{
	"date":      "kickoff_at",
	"home_team": "home_team",
	"away_team": "away_team",
	"league":    "league",
	"season":    "season",
	"status":    "status",
}

type matchTableModel struct {
	ID          string        `db:"id"`
	KickoffAt   time.Time     `db:"kickoff_at"`
	HomeTeam    string        `db:"home_team"`
	AwayTeam    string        `db:"away_team"`
	HomeScore   sql.NullInt64 `db:"home_score"`
	AwayScore   sql.NullInt64 `db:"away_score"`
	Status      string        `db:"status"`
	League      string        `db:"league"`
	Season      string        `db:"season"`
	Lineups     []byte        `db:"lineups"`
	Statistics  []byte        `db:"statistics"`
	MatchEvents []byte        `db:"match_events"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	ID          string        `db:"id"`
	KickoffAt   time.Time     `db:"kickoff_at"`
	HomeTeam    string        `db:"home_team"`
	AwayTeam    string        `db:"away_team"`
	HomeScore   sql.NullInt64 `db:"home_score"`
	AwayScore   sql.NullInt64 `db:"away_score"`
	Status      string        `db:"status"`
	League      string        `db:"league"`
	Season      string        `db:"season"`
	Lineups     string        `db:"lineups"`
	Statistics  string        `db:"statistics"`
	MatchEvents string        `db:"match_events"`
}
