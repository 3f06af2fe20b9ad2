package engine

import (
	"fmt"
	"strings"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
)

// Windows sets how much history is replayed per conversation depth.
type Windows struct {
	Shallow  int
	Detailed int
	Deep     int
}

// DefaultWindows matches the depth buckets used by the conversation manager.
func DefaultWindows() Windows {
	return Windows{Shallow: 10, Detailed: 15, Deep: 20}
}

// PromptBuilder assembles the system prompt and the replayed history for a
// completion call.
type PromptBuilder struct {
	ownerName  string
	ownerTitle string
	windows    Windows
}

// NewPromptBuilder creates a builder for the given owner identity.
func NewPromptBuilder(ownerName, ownerTitle string, windows Windows) *PromptBuilder {
	return &PromptBuilder{
		ownerName:  ownerName,
		ownerTitle: ownerTitle,
		windows:    windows,
	}
}

// System renders the system prompt for the current conversation state.
// extra carries retrieved knowledge and is appended as an additional
// context block when present.
func (b *PromptBuilder) System(cctx conversation.Context, extra string) string {
	var awareness strings.Builder

	if cctx.Summary != "" {
		fmt.Fprintf(&awareness, "\nCONVERSATION SUMMARY: %s\n", cctx.Summary)
	}
	if len(cctx.DiscussedTopics) > 0 {
		fmt.Fprintf(&awareness, "\nPREVIOUSLY DISCUSSED TOPICS: %s\n", strings.Join(cctx.DiscussedTopics, ", "))
	}
	if cctx.CurrentTopic != "" {
		fmt.Fprintf(&awareness, "\nCURRENT TOPIC: %s\n", cctx.CurrentTopic)
	}
	if cctx.FollowUp.LastQuestion != "" {
		fmt.Fprintf(&awareness, "\nLAST USER QUESTION: %q\n", cctx.FollowUp.LastQuestion)
		fmt.Fprintf(&awareness, "\nLAST MY RESPONSE: %q\n", truncate(cctx.FollowUp.LastAnswer, 200)+"...")
	}
	if len(cctx.FollowUp.RelatedTopics) > 0 {
		fmt.Fprintf(&awareness, "\nRELATED TOPICS IN CONVERSATION: %s\n", strings.Join(cctx.FollowUp.RelatedTopics, ", "))
	}

	prompt := fmt.Sprintf(systemPromptTemplate,
		b.ownerName, b.ownerTitle,
		awareness.String(),
		cctx.Flow.Depth, cctx.Flow.MessageCount,
		b.ownerName)

	if extra != "" {
		prompt += "\n\nADDITIONAL CONTEXT:\n" + extra
	}
	return prompt
}

// Window selects the transcript slice replayed to the model. Depth widens
// the window; without a summary it is capped so early conversations do not
// drag the whole transcript along.
func (b *PromptBuilder) Window(cctx conversation.Context) []ports.PromptMessage {
	limit := b.windows.Shallow
	switch cctx.Flow.Depth {
	case conversation.DepthDeep:
		limit = b.windows.Deep
	case conversation.DepthDetailed:
		limit = b.windows.Detailed
	}

	if cctx.Summary == "" && limit > b.windows.Shallow {
		limit = b.windows.Shallow
	}

	messages := cctx.Messages
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	out := make([]ports.PromptMessage, len(messages))
	for i, msg := range messages {
		out[i] = ports.PromptMessage{Role: msg.Role, Content: msg.Content}
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// systemPromptTemplate expects: owner name, owner title, awareness block,
// depth, message count, owner name.
const systemPromptTemplate = `You are %s's AI assistant, representing a %s from NIT Silchar. You have access to comprehensive knowledge about the owner's background, projects, and expertise.

CONVERSATION AWARENESS:
%s

CONVERSATION DEPTH: %s
MESSAGE COUNT: %d

IMPORTANT CONVERSATION RULES:
- REMEMBER what we've discussed before - refer to previous topics naturally
- If user says "it", "that", "this project", etc., understand the context from our conversation
- Build upon previous answers rather than repeating information
- If user asks follow-up questions, connect them to what we discussed earlier
- Use phrases like "As I mentioned earlier...", "Building on what we discussed...", "Regarding the [topic] we talked about..."

PERSONALITY & TONE:
- Professional yet approachable
- Concise and to-the-point
- Enthusiastic about AI-driven development
- Confident but not arrogant
- Always helpful and informative
- CONVERSATIONAL - remember our chat history

RESPONSE STYLE:
- Keep responses SHORT and CONCISE (2-3 sentences max for simple questions)
- Only provide detailed explanations when specifically asked for details
- Use bullet points for lists to save space
- Avoid repetitive information from our conversation
- Get straight to the point
- Reference previous parts of our conversation when relevant

RESPONSE GUIDELINES:
- Keep answers SHORT (1-3 sentences for basic questions)
- Only elaborate when asked for "details", "more information", or "explain properly"
- Use bullet points for lists
- Include relevant project examples briefly
- Offer to elaborate: "Want more details about [topic]?"
- Save detailed explanations for when specifically requested
- Use the comprehensive knowledge base context provided to give accurate, detailed responses
- When discussing projects, mention specific features, technologies, and achievements from the knowledge base
- Highlight the AI-Orchestrated Development approach when relevant
- ONLY answer questions about %s, his projects, skills, or work-related topics
- If asked about unrelated topics, politely redirect to work-related questions
- MOST IMPORTANTLY: Remember our conversation and build upon it naturally`
