package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultLeague = "Premier League"
	DefaultSeason = "2024/25"
)

// Status is the stored lifecycle state of a match.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
)

var ErrInvalidStatusFilter = errors.New("invalid status. use: upcoming, live, or finished")

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

func (s Status) rank() int {
	switch s {
	case StatusScheduled:
		return 0
	case StatusLive:
		return 1
	case StatusFinished:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether a stored match may move from s to next.
// Status only moves forward: scheduled -> live -> finished.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

// ParseStatusFilter maps the public filter vocabulary to a stored status.
func ParseStatusFilter(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "upcoming":
		return StatusScheduled, nil
	case "live":
		return StatusLive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return "", ErrInvalidStatusFilter
	}
}

// Match is one fixture document with its nested lineups, stats and events.
type Match struct {
	ID         string      `json:"id"`
	KickoffAt  time.Time   `json:"date"`
	HomeTeam   string      `json:"home_team"`
	AwayTeam   string      `json:"away_team"`
	HomeScore  *int        `json:"home_score"`
	AwayScore  *int        `json:"away_score"`
	Status     Status      `json:"status"`
	League     string      `json:"league"`
	Season     string      `json:"season"`
	Lineups    Lineups     `json:"lineups"`
	Statistics []Statistic `json:"statistics"`
	Events     []Event     `json:"match_events"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type Lineups struct {
	Home TeamLineup `json:"home"`
	Away TeamLineup `json:"away"`
}

type TeamLineup struct {
	StartingLineup []LineupPlayer   `json:"starting_lineups"`
	Substitutes    []LineupPlayer   `json:"substitutes"`
	Coach          []Coach          `json:"coach"`
	MissingPlayers []map[string]any `json:"missing_players"`
}

type LineupPlayer struct {
	Player   string `json:"player"`
	Number   string `json:"number"`
	Position string `json:"position"`
	PosX     string `json:"posx"`
	PosY     string `json:"posy"`
}

type Coach struct {
	Name     string `json:"lineup_player"`
	Number   string `json:"lineup_number"`
	Position string `json:"lineup_position"`
}

type Statistic struct {
	Type string `json:"type"`
	Home string `json:"home"`
	Away string `json:"away"`
}

type Event struct {
	EventID  string `json:"event_id"`
	UpdateAt string `json:"updateAt"`
	Type     string `json:"type"`
	Minute   string `json:"minute"`
	Team     string `json:"team"`
	Player   string `json:"player"`
	Assist   string `json:"assist"`
	Card     string `json:"card"`
	Comment  string `json:"comment"`
}

// Normalize fills defaults for fields the ingestion feed may omit.
func (m *Match) Normalize() {
	m.HomeTeam = strings.TrimSpace(m.HomeTeam)
	m.AwayTeam = strings.TrimSpace(m.AwayTeam)
	if m.Status == "" {
		m.Status = StatusScheduled
	}
	if strings.TrimSpace(m.League) == "" {
		m.League = DefaultLeague
	}
	if strings.TrimSpace(m.Season) == "" {
		m.Season = DefaultSeason
	}
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeam == "" || m.AwayTeam == "" {
		return fmt.Errorf("match %s: home and away team are required", m.ID)
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("match %s: kickoff date is required", m.ID)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("match %s: invalid status %q", m.ID, m.Status)
	}
	hasScore := m.HomeScore != nil || m.AwayScore != nil
	if m.Status == StatusScheduled && hasScore {
		return fmt.Errorf("match %s: scheduled match cannot carry a score", m.ID)
	}
	if m.Status != StatusScheduled && (m.HomeScore == nil || m.AwayScore == nil) {
		return fmt.Errorf("match %s: %s match requires both scores", m.ID, m.Status)
	}
	return nil
}
