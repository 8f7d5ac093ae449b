package leaderboard

import "strconv"

// Kind selects which leaderboard is requested.
type Kind string

const (
	KindTopScorers   Kind = "top-scorers"
	KindTopAssisters Kind = "top-assisters"
)

const playerImageBase = "https://images.fotmob.com/image_resources/playerimages/"

// Entry is one league leader. Exactly one of Goals and Assists is set.
type Entry struct {
	League  string `json:"league"`
	Player  string `json:"player"`
	Team    string `json:"team"`
	Goals   *int   `json:"goals,omitempty"`
	Assists *int   `json:"assists,omitempty"`
	Image   string `json:"image"`
}

type leader struct {
	league   string
	player   string
	team     string
	value    int
	fotmobID int
}

var scorers = []leader{
	{league: "Premier League", player: "Erling Haaland", team: "Manchester City", value: 14, fotmobID: 991282},
	{league: "La Liga", player: "Robert Lewandowski", team: "Barcelona", value: 16, fotmobID: 26655},
	{league: "Bundesliga", player: "Harry Kane", team: "Bayern Munich", value: 13, fotmobID: 405177},
	{league: "Serie A", player: "Marcus Thuram", team: "Inter Milan", value: 12, fotmobID: 772428},
	{league: "Ligue 1", player: "Bradley Barcola", team: "Paris SG", value: 11, fotmobID: 1325700},
}

var assisters = []leader{
	{league: "Premier League", player: "Mohamed Salah", team: "Liverpool", value: 10, fotmobID: 348259},
	{league: "La Liga", player: "Lamine Yamal", team: "Barcelona", value: 11, fotmobID: 1638210},
	{league: "Bundesliga", player: "Florian Wirtz", team: "Bayer Leverkusen", value: 9, fotmobID: 1054703},
	{league: "Serie A", player: "Khvicha Kvaratskhelia", team: "Napoli", value: 8, fotmobID: 1269399},
	{league: "Ligue 1", player: "Ousmane Dembélé", team: "Paris SG", value: 8, fotmobID: 655452},
}

// TopScorers returns the goal leaders of the five major leagues.
func TopScorers() []Entry {
	out := make([]Entry, 0, len(scorers))
	for _, l := range scorers {
		goals := l.value
		out = append(out, Entry{League: l.league, Player: l.player, Team: l.team, Goals: &goals, Image: imageURL(l.fotmobID)})
	}
	return out
}

// TopAssisters returns the assist leaders of the five major leagues.
func TopAssisters() []Entry {
	out := make([]Entry, 0, len(assisters))
	for _, l := range assisters {
		assists := l.value
		out = append(out, Entry{League: l.league, Player: l.player, Team: l.team, Assists: &assists, Image: imageURL(l.fotmobID)})
	}
	return out
}

// Compute returns the leaderboard of the given kind.
func Compute(kind Kind) ([]Entry, bool) {
	switch kind {
	case KindTopScorers:
		return TopScorers(), true
	case KindTopAssisters:
		return TopAssisters(), true
	default:
		return nil, false
	}
}

func imageURL(fotmobID int) string {
	return playerImageBase + strconv.Itoa(fotmobID) + ".png"
}
