package news

import "strings"

type tagRule struct {
	tag      Tag
	keywords []string
}

// Order matters: the first rule with a matching keyword wins.
var tagRules = []tagRule{
	{tag: TagTransfer, keywords: []string{"transfer", "sign", "deal"}},
	{tag: TagInjury, keywords: []string{"injury", "injured", "out"}},
	{tag: TagUCL, keywords: []string{"champions league", "ucl"}},
	{tag: TagEPL, keywords: []string{"premier league", "epl"}},
	{tag: TagBreaking, keywords: []string{"breaking", "just in"}},
	{tag: TagMatch, keywords: []string{"match", "win", "lose", "draw"}},
	{tag: TagManager, keywords: []string{"manager", "coach"}},
}

// Classify assigns a tag by plain substring match on the lowercased title.
func Classify(title string) Tag {
	lower := strings.ToLower(title)
	for _, rule := range tagRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.tag
			}
		}
	}

	return TagNews
}
