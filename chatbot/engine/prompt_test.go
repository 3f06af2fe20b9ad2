package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
)

func testBuilder() *PromptBuilder {
	return NewPromptBuilder("Dhruba Kumar Agarwalla", "AI-Orchestrated Full-Stack Developer", DefaultWindows())
}

func transcriptOf(n int) []conversation.Message {
	msgs := make([]conversation.Message, n)
	for i := range msgs {
		role := conversation.RoleUser
		if i%2 == 1 {
			role = conversation.RoleAssistant
		}
		msgs[i] = conversation.Message{Role: role, Content: fmt.Sprintf("message %d", i)}
	}
	return msgs
}

func TestSystemPromptCarriesConversationState(t *testing.T) {
	b := testBuilder()

	cctx := conversation.Context{
		CurrentTopic:    "GitIQ",
		DiscussedTopics: []string{"RakhiMart", "GitIQ"},
		Summary:         "They discussed RakhiMart payments.",
		FollowUp: conversation.FollowUp{
			LastQuestion:  "How fast is GitIQ?",
			LastAnswer:    "About 0.12s per commit.",
			RelatedTopics: []string{"GitIQ"},
		},
		Flow: conversation.Flow{MessageCount: 6, Depth: conversation.DepthDetailed},
	}

	got := b.System(cctx, "")
	assert.Contains(t, got, "You are Dhruba Kumar Agarwalla's AI assistant")
	assert.Contains(t, got, "representing a AI-Orchestrated Full-Stack Developer")
	assert.Contains(t, got, "CONVERSATION SUMMARY: They discussed RakhiMart payments.")
	assert.Contains(t, got, "PREVIOUSLY DISCUSSED TOPICS: RakhiMart, GitIQ")
	assert.Contains(t, got, "CURRENT TOPIC: GitIQ")
	assert.Contains(t, got, `LAST USER QUESTION: "How fast is GitIQ?"`)
	assert.Contains(t, got, "CONVERSATION DEPTH: detailed")
	assert.Contains(t, got, "MESSAGE COUNT: 6")
	assert.NotContains(t, got, "ADDITIONAL CONTEXT:")
}

func TestSystemPromptOmitsEmptyState(t *testing.T) {
	b := testBuilder()

	got := b.System(conversation.Context{Flow: conversation.Flow{Depth: conversation.DepthShallow}}, "")
	assert.NotContains(t, got, "CONVERSATION SUMMARY:")
	assert.NotContains(t, got, "PREVIOUSLY DISCUSSED TOPICS:")
	assert.NotContains(t, got, "CURRENT TOPIC:")
	assert.NotContains(t, got, "LAST USER QUESTION:")
}

func TestSystemPromptAppendsAdditionalContext(t *testing.T) {
	b := testBuilder()

	got := b.System(conversation.Context{}, "PROJECT: GitIQ\nDescription: ...")
	require.Contains(t, got, "ADDITIONAL CONTEXT:\nPROJECT: GitIQ")
	assert.True(t, strings.HasSuffix(got, "Description: ..."))
}

func TestSystemPromptTruncatesLastAnswer(t *testing.T) {
	b := testBuilder()

	long := strings.Repeat("x", 500)
	cctx := conversation.Context{
		FollowUp: conversation.FollowUp{LastQuestion: "q", LastAnswer: long},
	}

	got := b.System(cctx, "")
	assert.Contains(t, got, strings.Repeat("x", 200)+`...`)
	assert.NotContains(t, got, strings.Repeat("x", 201))
}

func TestWindowByDepth(t *testing.T) {
	b := testBuilder()

	tests := []struct {
		name    string
		depth   conversation.Depth
		summary string
		total   int
		want    int
	}{
		{"shallow keeps last 10", conversation.DepthShallow, "", 12, 10},
		{"detailed capped without summary", conversation.DepthDetailed, "", 18, 10},
		{"detailed with summary", conversation.DepthDetailed, "s", 18, 15},
		{"deep capped without summary", conversation.DepthDeep, "", 30, 10},
		{"deep with summary", conversation.DepthDeep, "s", 30, 20},
		{"short transcript untouched", conversation.DepthShallow, "", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cctx := conversation.Context{
				Messages: transcriptOf(tt.total),
				Summary:  tt.summary,
				Flow:     conversation.Flow{MessageCount: tt.total, Depth: tt.depth},
			}

			got := b.Window(cctx)
			require.Len(t, got, tt.want)
			// The most recent message always survives windowing.
			assert.Equal(t, fmt.Sprintf("message %d", tt.total-1), got[len(got)-1].Content)
		})
	}
}
