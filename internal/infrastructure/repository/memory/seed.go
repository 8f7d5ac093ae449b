package memory

import (
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/player"
)

func intPtr(v int) *int {
	return &v
}

// SeedMatches is a small fixture list used when no database is configured.
func SeedMatches() []match.Match {
	day := func(d, h int) time.Time {
		return time.Date(2025, time.January, d, h, 0, 0, 0, time.UTC)
	}

	items := []match.Match{
		{
			ID: "epl-2025-01-04-ars-bha", KickoffAt: day(4, 17),
			HomeTeam: "Brighton", AwayTeam: "Arsenal",
			HomeScore: intPtr(1), AwayScore: intPtr(1), Status: match.StatusFinished,
			Statistics: []match.Statistic{
				{Type: "Ball Possession", Home: "44%", Away: "56%"},
				{Type: "Total Shots", Home: "10", Away: "9"},
			},
			Events: []match.Event{
				{EventID: "1", Type: "goal", Minute: "16", Team: "away", Player: "Ethan Nwaneri"},
				{EventID: "2", Type: "goal", Minute: "61", Team: "home", Player: "Joao Pedro", Comment: "Penalty"},
			},
		},
		{
			ID: "epl-2025-01-05-liv-mun", KickoffAt: day(5, 16),
			HomeTeam: "Liverpool", AwayTeam: "Manchester United",
			HomeScore: intPtr(2), AwayScore: intPtr(2), Status: match.StatusFinished,
		},
		{
			ID: "epl-2025-01-14-ars-tot", KickoffAt: day(15, 20),
			HomeTeam: "Arsenal", AwayTeam: "Tottenham",
			HomeScore: intPtr(1), AwayScore: intPtr(0), Status: match.StatusLive,
		},
		{
			ID: "epl-2025-01-18-mci-che", KickoffAt: day(25, 17),
			HomeTeam: "Manchester City", AwayTeam: "Chelsea",
			Status: match.StatusScheduled,
		},
		{
			ID: "epl-2025-01-26-wol-ars", KickoffAt: day(25, 15),
			HomeTeam: "Wolverhampton", AwayTeam: "Arsenal",
			Status: match.StatusScheduled,
		},
	}
	for i := range items {
		items[i].Normalize()
		items[i].CreatedAt = items[i].KickoffAt
		items[i].UpdatedAt = items[i].KickoffAt
	}

	return items
}

// SeedPlayers is a small player list used when no database is configured.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			PlayerID: "erling-haaland",
			BasicInfo: player.BasicInfo{
				Name: "Erling Haaland", FullName: "Erling Braut Haaland", Age: 24,
				Nationality: "Norway", Position: "Forward", PreferredFoot: "Left",
			},
			CurrentClub: player.CurrentClub{Name: "Manchester City", Position: "ST", JerseyNumber: 9},
			Ratings: player.Ratings{
				Overall: 91, Potential: 94, Pace: 89, Shooting: 93,
				Passing: 66, Dribbling: 80, Defending: 45, Physical: 88,
			},
			SeasonStats: player.SeasonStats{Season: match.DefaultSeason, Appearances: 20, Goals: 14, Assists: 1},
			Strengths:   []string{"Finishing", "Positioning"},
		},
		{
			PlayerID: "mohamed-salah",
			BasicInfo: player.BasicInfo{
				Name: "Mohamed Salah", FullName: "Mohamed Salah Hamed Mahrous Ghaly", Age: 32,
				Nationality: "Egypt", Position: "Forward", PreferredFoot: "Left",
			},
			CurrentClub: player.CurrentClub{Name: "Liverpool", Position: "RW", JerseyNumber: 11},
			Ratings: player.Ratings{
				Overall: 89, Potential: 89, Pace: 89, Shooting: 87,
				Passing: 82, Dribbling: 88, Defending: 45, Physical: 76,
			},
			SeasonStats: player.SeasonStats{Season: match.DefaultSeason, Appearances: 20, Goals: 17, Assists: 10},
		},
		{
			PlayerID: "bukayo-saka",
			BasicInfo: player.BasicInfo{
				Name: "Bukayo Saka", FullName: "Bukayo Ayoyinka Temidayo Saka", Age: 23,
				Nationality: "England", Position: "Forward", PreferredFoot: "Left",
			},
			CurrentClub: player.CurrentClub{Name: "Arsenal", Position: "RW", JerseyNumber: 7},
			Ratings: player.Ratings{
				Overall: 87, Potential: 91, Pace: 85, Shooting: 82,
				Passing: 83, Dribbling: 87, Defending: 65, Physical: 72,
			},
			SeasonStats: player.SeasonStats{Season: match.DefaultSeason, Appearances: 16, Goals: 5, Assists: 9},
		},
		{
			PlayerID: "virgil-van-dijk",
			BasicInfo: player.BasicInfo{
				Name: "Virgil van Dijk", FullName: "Virgil van Dijk", Age: 33,
				Nationality: "Netherlands", Position: "Defender", PreferredFoot: "Right",
			},
			CurrentClub: player.CurrentClub{Name: "Liverpool", Position: "CB", JerseyNumber: 4},
			Ratings: player.Ratings{
				Overall: 89, Potential: 89, Pace: 78, Shooting: 60,
				Passing: 71, Dribbling: 72, Defending: 90, Physical: 86,
			},
			SeasonStats: player.SeasonStats{Season: match.DefaultSeason, Appearances: 20, Goals: 2, Assists: 1},
		},
	}
}
