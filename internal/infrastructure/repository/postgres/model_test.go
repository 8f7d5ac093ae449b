package postgres

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/player"
)

func TestMatchRowMapping(t *testing.T) {
	home, away := 2, 1
	item := match.Match{
		ID:        "m1",
		KickoffAt: time.Date(2025, 1, 4, 17, 30, 0, 0, time.UTC),
		HomeTeam:  "Brighton",
		AwayTeam:  "Arsenal",
		HomeScore: &home,
		AwayScore: &away,
		Status:    match.StatusFinished,
		League:    match.DefaultLeague,
		Season:    match.DefaultSeason,
		Lineups: match.Lineups{Home: match.TeamLineup{
			StartingLineup: []match.LineupPlayer{{Player: "Bart Verbruggen", Number: "1", Position: "G", PosX: "50", PosY: "5"}},
		}},
		Statistics: []match.Statistic{{Type: "Corners", Home: "4", Away: "6"}},
	}

	model, err := matchToInsertModel(item)
	if err != nil {
		t.Fatalf("to insert model: %v", err)
	}
	if model.MatchEvents != "[]" {
		t.Fatalf("expected empty events document, got %q", model.MatchEvents)
	}
	if !model.HomeScore.Valid || model.HomeScore.Int64 != 2 {
		t.Fatalf("unexpected home score %+v", model.HomeScore)
	}

	row := matchTableModel{
		ID:          model.ID,
		KickoffAt:   model.KickoffAt,
		HomeTeam:    model.HomeTeam,
		AwayTeam:    model.AwayTeam,
		HomeScore:   model.HomeScore,
		AwayScore:   model.AwayScore,
		Status:      model.Status,
		League:      model.League,
		Season:      model.Season,
		Lineups:     []byte(model.Lineups),
		Statistics:  []byte(model.Statistics),
		MatchEvents: []byte(model.MatchEvents),
	}
	got, err := matchFromRow(row)
	if err != nil {
		t.Fatalf("from row: %v", err)
	}
	if got.Lineups.Home.StartingLineup[0].Player != "Bart Verbruggen" || got.Statistics[0].Away != "6" {
		t.Fatalf("nested documents lost: %+v", got)
	}
	if got.AwayScore == nil || *got.AwayScore != 1 {
		t.Fatalf("unexpected away score")
	}
}

func TestPlayerInsertModelDenormalizesSortColumns(t *testing.T) {
	item := player.Player{
		PlayerID:    "p1",
		BasicInfo:   player.BasicInfo{Name: "Bukayo Saka", FullName: "Bukayo Saka", Position: "Forward", Nationality: "England"},
		CurrentClub: player.CurrentClub{Name: "Arsenal"},
		Ratings:     player.Ratings{Overall: 87},
		SeasonStats: player.SeasonStats{Goals: 5},
	}

	model, err := playerToInsertModel(item)
	if err != nil {
		t.Fatalf("to insert model: %v", err)
	}
	if model.Goals != 5 || model.Overall != 87 || model.ClubName != "Arsenal" || model.Nationality != "England" {
		t.Fatalf("unexpected denormalized columns: %+v", model)
	}
	if model.Strengths != "[]" || model.Trophies != "[]" {
		t.Fatalf("expected empty arrays for nil slices")
	}

	got, err := playerFromRow(playerTableModel{
		PlayerID:    model.PlayerID,
		BasicInfo:   []byte(model.BasicInfo),
		CurrentClub: []byte(model.CurrentClub),
		Ratings:     []byte(model.Ratings),
		SeasonStats: []byte(model.SeasonStats),
		Strengths:   []byte(model.Strengths),
	})
	if err != nil {
		t.Fatalf("from row: %v", err)
	}
	if got.BasicInfo.Name != "Bukayo Saka" || got.Ratings.Overall != 87 || got.SeasonStats.Goals != 5 {
		t.Fatalf("unexpected decoded player: %+v", got)
	}
}
