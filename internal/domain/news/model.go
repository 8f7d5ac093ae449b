package news

// Tag is the topic label assigned to a headline.
type Tag string

const (
	TagTransfer Tag = "TRANSFER"
	TagInjury   Tag = "INJURY"
	TagUCL      Tag = "UCL"
	TagEPL      Tag = "EPL"
	TagBreaking Tag = "BREAKING"
	TagMatch    Tag = "MATCH"
	TagManager  Tag = "MANAGER"
	TagNews     Tag = "NEWS"
)

const (
	SourceBBCSport     = "BBC Sport"
	SourceSkySports    = "Sky Sports"
	SourceFootballNews = "Football News"
)

const (
	// MaxArticles caps the merged headline list.
	MaxArticles = 8
	// MaxPerSource caps how many blocks are read from a single page.
	MaxPerSource = 5
	// MinTitleLength is the shortest accepted headline, after trimming.
	MinTitleLength = 11

	RecentlyLabel = "Recently"
)

// Candidate is a raw headline extracted from a source page.
type Candidate struct {
	Title string
	Link  string
	Time  string
}

// Article is a tagged headline as served by the news listing.
type Article struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Source string `json:"source"`
	Tag    Tag    `json:"tag"`
	Time   string `json:"time"`
	Link   string `json:"link"`
}

// NewArticle tags a candidate and derives its stable id.
func NewArticle(source string, c Candidate) Article {
	timeLabel := c.Time
	if timeLabel == "" {
		timeLabel = RecentlyLabel
	}

	return Article{
		ID:     ArticleID(source, c.Title),
		Title:  c.Title,
		Source: source,
		Tag:    Classify(c.Title),
		Time:   timeLabel,
		Link:   c.Link,
	}
}

// EnrichedArticle is an article with synthesized author, summary and body.
type EnrichedArticle struct {
	Article
	Author  string `json:"author"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}
