package classify

import "strings"

// TopicGeneral is returned when no topic rule matches.
const TopicGeneral = "General Discussion"

// topicRules run most-specific first: project names before technology
// vocabularies, technologies before the catch-all "project"/"work" bucket.
var topicRules = []Rule{
	{Keywords: []string{"rakhimart", "rakhi mart", "e-commerce", "ecommerce", "cashfree", "payment", "delivery partner"}, Label: "RakhiMart"},
	{Keywords: []string{"event manager", "event management"}, Label: "Event Manager"},
	{Keywords: []string{"gitiq", "git iq", "repository analysis"}, Label: "GitIQ"},
	{Keywords: []string{"portfolio", "website"}, Label: "Portfolio Website"},
	{Keywords: []string{"ai", "artificial intelligence", "orchestration"}, Label: "AI Development"},
	{Keywords: []string{"react", "node", "typescript"}, Label: "Technology Stack"},
	{Keywords: []string{"project", "work"}, Label: "Projects Overview"},
	{Keywords: []string{"contact", "hire", "collaborate"}, Label: "Contact & Collaboration"},
	{Keywords: []string{"experience", "background", "education"}, Label: "Background & Experience"},
}

// Topic extracts the discussion topic from a user message.
func Topic(message string) string {
	lower := strings.ToLower(message)
	for _, r := range topicRules {
		if containsAny(lower, r.Keywords) {
			return r.Label
		}
	}
	return TopicGeneral
}
