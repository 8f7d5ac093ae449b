package news

import "fmt"

var fallbackHeadlines = []struct {
	title string
	tag   Tag
}{
	{title: "Premier League title race heats up as top teams clash", tag: TagEPL},
	{title: "Star striker breaks scoring record in dramatic fashion", tag: TagBreaking},
	{title: "Major transfer deal confirmed by European giants", tag: TagTransfer},
	{title: "Champions League knockout stages draw announced", tag: TagUCL},
	{title: "Key midfielder ruled out for crucial upcoming fixtures", tag: TagInjury},
	{title: "Legendary manager announces retirement plans", tag: TagManager},
	{title: "Underdog team secures stunning victory against favorites", tag: TagMatch},
	{title: "International tournament qualifiers produce shocking results", tag: TagNews},
}

// Fallback returns the fixed headline set served when no source yields anything.
// Tags are fixed rather than classified.
func Fallback() []Article {
	out := make([]Article, 0, len(fallbackHeadlines))
	for i, item := range fallbackHeadlines {
		out = append(out, Article{
			ID:     ArticleID(SourceFootballNews, item.title),
			Title:  item.title,
			Source: SourceFootballNews,
			Tag:    item.tag,
			Time:   fmt.Sprintf("%dh ago", i+1),
			Link:   "#",
		})
	}

	return out
}

// FindByID looks an article up by id.
func FindByID(articles []Article, id string) (Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}

	return Article{}, false
}
