package engine

import (
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
)

// Link classification values.
const (
	LinkTypeGitHub   = "github"
	LinkTypeDemo     = "demo"
	LinkTypeExternal = "external"
)

// Link is a markdown link extracted from the reply.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// CodeSnippet is a fenced code block extracted from the reply.
type CodeSnippet struct {
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Response is the engine's answer to one user message.
type Response struct {
	Message            string        `json:"message"`
	SuggestedQuestions []string      `json:"suggested_questions,omitempty"`
	ProjectReferences  []string      `json:"project_references,omitempty"`
	CodeSnippets       []CodeSnippet `json:"code_snippets,omitempty"`
	Links              []Link        `json:"links,omitempty"`

	// Redirected marks an off-topic question answered with the standing
	// redirect instead of a model completion.
	Redirected bool `json:"redirected,omitempty"`

	Usage ports.Usage `json:"usage"`
}
