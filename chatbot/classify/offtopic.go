package classify

import "strings"

// Vocabularies for the off-topic gate. The relevant set errs on the side of
// letting questions through: a false "off-topic" answer is worse UX than one
// wasted completion.
var (
	relevantKeywords = []string{
		"dhruba", "project", "event manager", "gitiq", "portfolio", "website",
		"ai", "development", "developer", "programming", "code", "technology",
		"nit silchar", "civil engineering", "student", "experience", "skill",
		"hire", "contact", "email", "phone", "collaboration", "work",
		"react", "node", "typescript", "javascript", "firebase", "github",
		"orchestration", "prompt engineering", "full stack", "web development",
	}

	offTopicKeywords = []string{
		"weather", "sports", "politics", "news", "cooking", "recipe",
		"movie", "music", "celebrity", "game", "joke", "story",
		"math problem", "homework", "assignment", "translate",
		"what is", "how to", "explain", "define",
	}

	greetings = []string{
		"hello", "hi", "hey", "good morning", "good evening",
		"how are you", "what can you do", "help me",
	}
)

// OffTopic reports whether a user message falls outside the portfolio
// domain. Greetings always pass. A message with an off-topic keyword and no
// relevant keyword is rejected, as is any non-greeting longer than ten
// characters that mentions nothing relevant.
func OffTopic(query string) bool {
	lower := strings.ToLower(query)

	relevant := containsAny(lower, relevantKeywords)
	if containsAny(lower, offTopicKeywords) && !relevant {
		return true
	}

	if containsAny(lower, greetings) {
		return false
	}

	return !relevant && len(lower) > 10
}
