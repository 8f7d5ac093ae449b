package player

import (
	"fmt"
	"strings"
	"time"
)

// Player is the full scouting record for one footballer. PlayerID is
// assigned upstream and never changes once stored.
type Player struct {
	PlayerID        string        `json:"player_id"`
	BasicInfo       BasicInfo     `json:"basic_info"`
	CurrentClub     CurrentClub   `json:"current_club"`
	Ratings         Ratings       `json:"fifa_ratings"`
	SeasonStats     SeasonStats   `json:"season_stats"`
	AdvancedStats   AdvancedStats `json:"advanced_stats"`
	PlayingStyle    string        `json:"playing_style"`
	Strengths       []string      `json:"strengths"`
	Weaknesses      []string      `json:"weaknesses"`
	RecentMatches   []RecentMatch `json:"recent_matches"`
	TransferHistory []Transfer    `json:"transfer_history"`
	Trophies        []Trophy      `json:"trophies"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type BasicInfo struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Age           int    `json:"age"`
	DateOfBirth   string `json:"date_of_birth"`
	Nationality   string `json:"nationality"`
	Position      string `json:"position"`
	PreferredFoot string `json:"preferred_foot"`
	Height        string `json:"height"`
	Weight        string `json:"weight"`
	Image         string `json:"image"`
}

type CurrentClub struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	JerseyNumber  int    `json:"jersey_number"`
	JoinedDate    string `json:"joined_date"`
	ContractUntil string `json:"contract_until"`
	MarketValue   string `json:"market_value"`
}

// Ratings is the fixed 0-99 attribute vector.
type Ratings struct {
	Overall   int `json:"overall"`
	Potential int `json:"potential"`
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`
}

type SeasonStats struct {
	Season        string  `json:"season"`
	Appearances   int     `json:"appearances"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	MinutesPlayed int     `json:"minutes_played"`
	GoalsPer90    float64 `json:"goals_per_90"`
	AssistsPer90  float64 `json:"assists_per_90"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
}

type AdvancedStats struct {
	XG                 float64 `json:"xG"`
	XA                 float64 `json:"xA"`
	PassCompletion     float64 `json:"pass_completion"`
	KeyPassesPer90     float64 `json:"key_passes_per_90"`
	DribblesPer90      float64 `json:"dribbles_per_90"`
	TacklesPer90       float64 `json:"tackles_per_90"`
	InterceptionsPer90 float64 `json:"interceptions_per_90"`
	AerialDuelsWon     float64 `json:"aerial_duels_won"`
}

type RecentMatch struct {
	Date     string  `json:"date"`
	Opponent string  `json:"opponent"`
	Result   string  `json:"result"`
	Minutes  int     `json:"minutes"`
	Goals    int     `json:"goals"`
	Assists  int     `json:"assists"`
	Rating   float64 `json:"rating"`
}

type Transfer struct {
	Date string `json:"date"`
	From string `json:"from"`
	To   string `json:"to"`
	Fee  string `json:"fee"`
	Type string `json:"type"`
}

type Trophy struct {
	Title       string `json:"title"`
	Season      string `json:"season"`
	Competition string `json:"competition"`
}

// Summary is the lightweight projection returned by search.
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

func (p Player) Summary() Summary {
	return Summary{
		ID:       p.PlayerID,
		Name:     p.BasicInfo.Name,
		Image:    p.BasicInfo.Image,
		Team:     p.CurrentClub.Name,
		Position: p.BasicInfo.Position,
	}
}

// Listing is the projection returned by paginated player lists.
type Listing struct {
	PlayerID    string      `json:"player_id"`
	BasicInfo   BasicInfo   `json:"basic_info"`
	CurrentClub CurrentClub `json:"current_club"`
	Ratings     Ratings     `json:"fifa_ratings"`
	SeasonStats SeasonStats `json:"season_stats"`
}

func (p Player) Listing() Listing {
	return Listing{
		PlayerID:    p.PlayerID,
		BasicInfo:   p.BasicInfo,
		CurrentClub: p.CurrentClub,
		Ratings:     p.Ratings,
		SeasonStats: p.SeasonStats,
	}
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.PlayerID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.BasicInfo.Name) == "" {
		return fmt.Errorf("player %s: name is required", p.PlayerID)
	}
	for name, v := range map[string]int{
		"overall":   p.Ratings.Overall,
		"potential": p.Ratings.Potential,
		"pace":      p.Ratings.Pace,
		"shooting":  p.Ratings.Shooting,
		"passing":   p.Ratings.Passing,
		"dribbling": p.Ratings.Dribbling,
		"defending": p.Ratings.Defending,
		"physical":  p.Ratings.Physical,
	} {
		if v < 0 || v > 99 {
			return fmt.Errorf("player %s: rating %s=%d out of range 0-99", p.PlayerID, name, v)
		}
	}
	return nil
}
