package news

import (
	"github.com/valyala/bytebufferpool"
)

var authorsBySource = map[string]string{
	SourceBBCSport:  "BBC Sport Editorial Team",
	SourceSkySports: "Sky Sports News",
}

const defaultAuthor = "Football News Team"

type summaryTemplate struct {
	prefix string
	suffix string
}

var summaryTemplates = map[Tag]summaryTemplate{
	TagBreaking: {prefix: "Breaking news in the world of football: ", suffix: ". This developing story has caught the attention of fans and analysts worldwide."},
	TagTransfer: {prefix: "Transfer news: ", suffix: ". The football transfer market continues to heat up with this latest development."},
	TagUCL:      {prefix: "Champions League update: ", suffix: ". European football's premier competition brings another exciting development."},
	TagEPL:      {prefix: "Premier League news: ", suffix: ". The English top flight continues to deliver compelling storylines."},
	TagInjury:   {prefix: "Injury report: ", suffix: ". Team management and fans await further updates on this situation."},
	TagManager:  {prefix: "Management news: ", suffix: ". Coaching decisions continue to shape the landscape of football."},
	TagMatch:    {prefix: "Match report: ", suffix: ". Another thrilling encounter in the beautiful game."},
	TagNews:     {prefix: "Football news: ", suffix: ". Stay updated with the latest from the world of football."},
}

var bodyTemplates = map[Tag][]string{
	TagBreaking: {
		"This breaking news story is developing rapidly, with sources close to the situation providing ongoing updates. The football community has reacted with significant interest to these developments.",
		"Experts and analysts are closely monitoring the situation, with many suggesting this could have far-reaching implications for the teams and players involved.",
		"Fans have taken to social media to share their reactions, with the story trending across multiple platforms. The coming days are expected to bring further clarity to the situation.",
		"Stay tuned for more updates as this story continues to develop.",
	},
	TagTransfer: {
		"Transfer negotiations have reportedly reached an advanced stage, with club officials working to finalize the details of the deal. Sources suggest that personal terms are being discussed alongside the transfer fee.",
		"The player's current club has acknowledged the interest but maintains that no final decision has been made. Meanwhile, the potential destination club is said to be confident about completing the transfer.",
		"Football analysts believe this move could significantly impact both clubs' strategies for the upcoming season. The transfer window remains open, and more developments are expected soon.",
		"Fans of both clubs are eagerly awaiting official confirmation of the deal.",
	},
	TagUCL: {
		"The Champions League continues to captivate football fans around the world with its high-stakes competition and world-class performances. This latest development adds another layer of intrigue to Europe's premier club competition.",
		"Teams are preparing intensively for their upcoming fixtures, with managers carefully strategizing to gain any possible advantage. The quality of football on display has been exceptional throughout the tournament.",
		"Experts predict that this news could influence the dynamics of upcoming matches, potentially affecting team selections and tactical approaches.",
		"The road to the final promises more excitement and drama as the competition progresses.",
	},
	TagEPL: {
		"The Premier League's reputation as the most competitive football league in the world continues to be reinforced by such developments. Teams are locked in intense battles across multiple fronts, from the title race to European qualification.",
		"Managers and players are under constant scrutiny as they navigate the demanding schedule and high expectations. Every match carries significant implications for league standings and season objectives.",
		"Fans have been treated to exceptional football throughout the campaign, with this latest news adding to the narrative of an unforgettable season.",
		"The coming weeks will be crucial in determining how this situation unfolds and impacts the final league standings.",
	},
	TagInjury: {
		"Medical staff are conducting thorough assessments to determine the full extent of the injury and the expected recovery timeline. The club has stated that they will provide updates as more information becomes available.",
		"This setback comes at a crucial time in the season, potentially affecting team selection and tactical plans for upcoming fixtures. The coaching staff will need to adapt their strategies accordingly.",
		"Teammates and fans have expressed their support, with many taking to social media to wish for a speedy recovery. The player's absence will undoubtedly be felt, given their importance to the team.",
		"The club's medical team is working closely with the player to ensure the best possible rehabilitation process.",
	},
	TagManager: {
		"Managerial decisions often prove pivotal in shaping a club's direction and success. This latest development has sparked widespread discussion among fans, pundits, and former players.",
		"The individual in question brings a wealth of experience and a proven track record in football management. Their approach to tactics, player development, and team building will be closely scrutinized.",
		"Club officials have expressed confidence in this decision, citing alignment with the club's long-term vision and objectives. The appointment is expected to usher in a new era for the organization.",
		"Fans are eager to see how this change will impact team performance and the club's competitive standing.",
	},
	TagMatch: {
		"The match delivered everything fans could hope for, with both teams displaying skill, determination, and tactical acumen. Key moments throughout the game kept spectators on the edge of their seats.",
		"Individual performances stood out, with several players making significant contributions to their team's efforts. The tactical battle between the managers added an extra dimension to the contest.",
		"Post-match analysis has highlighted the critical decisions and turning points that shaped the final result. Both sets of fans witnessed a memorable encounter that will be discussed for some time.",
		"The result has implications for league standings and team morale as the season progresses.",
	},
	TagNews: {
		"This development in the football world has generated considerable interest across the sporting community. Various stakeholders are assessing the potential impact and implications of this news.",
		"Industry experts have weighed in with their perspectives, offering analysis on what this means for the broader football landscape. The situation continues to evolve, with new information emerging regularly.",
		"Fans and observers are following the story closely, engaging in discussions about its significance and potential outcomes. Social media platforms have seen active debate and commentary.",
		"Further updates are expected as the situation develops and more details become available.",
	},
}

// Author returns the byline used for a source.
func Author(source string) string {
	if author, ok := authorsBySource[source]; ok {
		return author
	}
	return defaultAuthor
}

// Summary renders the one-sentence summary for a headline.
func Summary(title string, tag Tag) string {
	tpl, ok := summaryTemplates[tag]
	if !ok {
		return title + ". Follow this story for more updates."
	}
	return tpl.prefix + title + tpl.suffix
}

// Content renders the article body: the summary followed by the tag's paragraphs,
// separated by blank lines. Unknown tags use the NEWS paragraphs.
func Content(title string, tag Tag) string {
	paragraphs, ok := bodyTemplates[tag]
	if !ok {
		paragraphs = bodyTemplates[TagNews]
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(Summary(title, tag))
	for _, p := range paragraphs {
		_, _ = buf.WriteString("\n\n")
		_, _ = buf.WriteString(p)
	}

	return buf.String()
}

// Enrich attaches author, summary and body to an article.
func Enrich(a Article) EnrichedArticle {
	return EnrichedArticle{
		Article: a,
		Author:  Author(a.Source),
		Summary: Summary(a.Title, a.Tag),
		Content: Content(a.Title, a.Tag),
	}
}
