// Package classify holds the pure, table-driven classifiers that shape a
// conversation: user intent, discussion topic, and the off-topic gate. All
// functions here are deterministic string matchers with no I/O, so they can
// run on the hot path before any network call.
package classify

import "strings"

// Intent labels. Stored on the conversation context and used by the prompt
// builder to steer tone.
const (
	IntentContact   = "contact"
	IntentTechnical = "technical"
	IntentBusiness  = "business"
	IntentCareer    = "career"
	IntentGeneral   = "general"
)

// Rule maps a keyword set to a label. First matching rule wins.
type Rule struct {
	Keywords []string
	Label    string
}

// intentRules are checked in order; contact outranks technical because
// "hire" appears in both vocabularies.
var intentRules = []Rule{
	{Keywords: []string{"contact", "email", "phone", "reach", "connect", "hire", "collaborate"}, Label: IntentContact},
	{Keywords: []string{"code", "architecture", "technical", "implementation", "api", "database", "algorithm"}, Label: IntentTechnical},
	{Keywords: []string{"roi", "impact", "business", "client", "project management", "timeline", "cost"}, Label: IntentBusiness},
	{Keywords: []string{"experience", "skills", "background", "education", "career", "job"}, Label: IntentCareer},
}

// Intent classifies a user message into one of the intent labels.
func Intent(message string) string {
	lower := strings.ToLower(message)
	for _, r := range intentRules {
		if containsAny(lower, r.Keywords) {
			return r.Label
		}
	}
	return IntentGeneral
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
