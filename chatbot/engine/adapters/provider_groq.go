// Package adapters implements the engine's ports against real
// infrastructure: the hosted completion API, session stores, cache,
// rate limiter, and tracer.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
)

// Ensure GroqProvider implements the Provider port.
var _ ports.Provider = (*GroqProvider)(nil)

// GroqProvider talks to an OpenAI-compatible chat completions endpoint.
// Groq is the primary target but any host speaking the same wire format
// works through BaseURL.
type GroqProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// chatRequest is the chat completions request body.
type chatRequest struct {
	Model       string                `json:"model"`
	Messages    []ports.PromptMessage `json:"messages"`
	Temperature float64               `json:"temperature,omitempty"`
	TopP        float64               `json:"top_p,omitempty"`
	MaxTokens   int                   `json:"max_tokens,omitempty"`
	Stream      bool                  `json:"stream"`
}

// chatResponse is the chat completions response body.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage ports.Usage `json:"usage"`
}

// NewGroqProvider creates a provider for the given endpoint and model. The
// API key is validated on the first call, not here, so a misconfigured
// process still starts and can serve off-topic redirects.
func NewGroqProvider(apiKey, baseURL, model string) *GroqProvider {
	return &GroqProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Complete sends one chat completion request.
func (p *GroqProvider) Complete(ctx context.Context, input ports.PromptInput, opts ports.Options) (ports.Completion, error) {
	if p.apiKey == "" {
		return ports.Completion{}, fmt.Errorf("%w: missing API key", ports.ErrConfiguration)
	}

	messages := make([]ports.PromptMessage, 0, len(input.Messages)+1)
	if input.System != "" {
		messages = append(messages, ports.PromptMessage{Role: "system", Content: input.System})
	}
	messages = append(messages, input.Messages...)

	req := chatRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   opts.MaxTokens,
		Stream:      false,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return ports.Completion{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("%w: %v", ports.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("%w: failed to read response: %v", ports.ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		return ports.Completion{}, fmt.Errorf("%w: status %d: %s", ports.ErrTransport, resp.StatusCode, string(respBody))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return ports.Completion{}, fmt.Errorf("%w: failed to parse response: %v", ports.ErrTransport, err)
	}

	if len(apiResp.Choices) == 0 {
		return ports.Completion{}, fmt.Errorf("%w: no choices", ports.ErrEmptyResponse)
	}

	text := apiResp.Choices[0].Message.Content
	if text == "" {
		return ports.Completion{}, fmt.Errorf("%w: empty content (finish_reason: %s)", ports.ErrEmptyResponse, apiResp.Choices[0].FinishReason)
	}

	return ports.Completion{
		Text:  text,
		Usage: apiResp.Usage,
	}, nil
}
