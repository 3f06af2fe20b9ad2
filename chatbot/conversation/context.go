// Package conversation tracks per-session chat state: the transcript, the
// classified topic and intent, follow-up context, and the rolling summary.
// The Manager is the only mutator; everything else hands out copies.
package conversation

import "time"

// Message roles on the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Depth buckets drive how much history is replayed to the model.
type Depth string

const (
	DepthShallow  Depth = "shallow"
	DepthDetailed Depth = "detailed"
	DepthDeep     Depth = "deep"
)

// Message is one transcript entry.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FollowUp captures the last exchange so the next prompt can reference it.
type FollowUp struct {
	LastQuestion  string   `json:"last_question"`
	LastAnswer    string   `json:"last_answer"`
	RelatedTopics []string `json:"related_topics"`
}

// Flow summarizes transcript shape.
type Flow struct {
	MessageCount int   `json:"message_count"`
	Depth        Depth `json:"depth"`
}

// Context is the full session state. It round-trips through JSON for
// persistence.
type Context struct {
	SessionID       string    `json:"session_id"`
	Messages        []Message `json:"messages"`
	CurrentTopic    string    `json:"current_topic"`
	DiscussedTopics []string  `json:"discussed_topics"`
	UserIntent      string    `json:"user_intent"`
	FollowUp        FollowUp  `json:"follow_up"`
	Flow            Flow      `json:"flow"`
	Summary         string    `json:"summary,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func depthFor(messageCount int) Depth {
	switch {
	case messageCount < 4:
		return DepthShallow
	case messageCount < 10:
		return DepthDetailed
	default:
		return DepthDeep
	}
}

func (c *Context) recomputeFlow() {
	c.Flow.MessageCount = len(c.Messages)
	c.Flow.Depth = depthFor(len(c.Messages))
}

// Clone returns a deep copy safe to read outside the Manager's lock.
func (c *Context) Clone() Context {
	out := *c
	out.Messages = append([]Message(nil), c.Messages...)
	out.DiscussedTopics = append([]string(nil), c.DiscussedTopics...)
	out.FollowUp.RelatedTopics = append([]string(nil), c.FollowUp.RelatedTopics...)
	return out
}
