package postgres

import (
	"time"
)

const playersTable = "players"

// Scalar columns duplicate a few nested fields so filters and ordering stay
// index-friendly; the JSONB columns remain the source of truth.
var playerSelectColumns = []string{
	"player_id",
	"basic_info",
	"current_club",
	"fifa_ratings",
	"season_stats",
	"advanced_stats",
	"playing_style",
	"strengths",
	"weaknesses",
	"recent_matches",
	"transfer_history",
	"trophies",
	"created_at",
	"updated_at",
}

var playerSummaryColumns = []string{
	"player_id",
	"name",
	"image",
	"club_name",
	"position",
}

type playerTableModel struct {
	PlayerID        string    `db:"player_id"`
	BasicInfo       []byte    `db:"basic_info"`
	CurrentClub     []byte    `db:"current_club"`
	Ratings         []byte    `db:"fifa_ratings"`
	SeasonStats     []byte    `db:"season_stats"`
	AdvancedStats   []byte    `db:"advanced_stats"`
	PlayingStyle    string    `db:"playing_style"`
	Strengths       []byte    `db:"strengths"`
	Weaknesses      []byte    `db:"weaknesses"`
	RecentMatches   []byte    `db:"recent_matches"`
	TransferHistory []byte    `db:"transfer_history"`
	Trophies        []byte    `db:"trophies"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type playerSummaryModel struct {
	PlayerID string `db:"player_id"`
	Name     string `db:"name"`
	Image    string `db:"image"`
	ClubName string `db:"club_name"`
	Position string `db:"position"`
}

type playerInsertModel struct {
	PlayerID        string `db:"player_id"`
	Name            string `db:"name"`
	FullName        string `db:"full_name"`
	Image           string `db:"image"`
	Position        string `db:"position"`
	Nationality     string `db:"nationality"`
	ClubName        string `db:"club_name"`
	Goals           int    `db:"goals"`
	Overall         int    `db:"overall"`
	BasicInfo       string `db:"basic_info"`
	CurrentClub     string `db:"current_club"`
	Ratings         string `db:"fifa_ratings"`
	SeasonStats     string `db:"season_stats"`
	AdvancedStats   string `db:"advanced_stats"`
	PlayingStyle    string `db:"playing_style"`
	Strengths       string `db:"strengths"`
	Weaknesses      string `db:"weaknesses"`
	RecentMatches   string `db:"recent_matches"`
	TransferHistory string `db:"transfer_history"`
	Trophies        string `db:"trophies"`
}
