// Package engineports defines the interfaces the completion engine depends
// on. Adapters implement them; the engine itself never imports an adapter.
package engineports

import "context"

// PromptMessage is one chat message on the wire.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PromptInput is the fully assembled request to a completion provider.
type PromptInput struct {
	System   string
	Messages []PromptMessage
}

// Options tune a single completion call.
type Options struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Usage reports provider-side token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the provider's answer.
type Completion struct {
	Text  string
	Usage Usage
}

// Provider produces chat completions from a hosted model.
type Provider interface {
	Complete(ctx context.Context, input PromptInput, opts Options) (Completion, error)
}
