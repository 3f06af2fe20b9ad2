package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/classify"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/knowledge"
)

// redirectMessage answers off-topic questions without touching the model.
const redirectMessage = "I'm here to help you learn about Dhruba's projects, skills, and experience. Please ask me anything related to his work, development approach, or how to get in touch with him!"

var redirectSuggestions = []string{
	"Tell me about Dhruba's projects",
	"What technologies does he use?",
	"How does AI orchestration work?",
	"How can I contact Dhruba?",
}

// Orchestrator runs one user message through the full pipeline: off-topic
// gate, rate limit, cache, knowledge retrieval, prompt assembly, provider
// call, and output parsing. Conversation state is mutated only on success;
// a failed completion rolls the user turn back.
type Orchestrator struct {
	provider   ports.Provider
	builder    *PromptBuilder
	parser     *OutputParser
	summarizer conversation.Summarizer
	cache      ports.Cache
	limiter    ports.RateLimiter
	tracer     ports.Tracer

	index atomic.Pointer[knowledge.Index]

	opts            ports.Options
	cacheTTLSeconds int
}

// NewOrchestrator wires an orchestrator. All dependencies are required;
// the factory substitutes no-op implementations for disabled concerns.
func NewOrchestrator(
	provider ports.Provider,
	builder *PromptBuilder,
	parser *OutputParser,
	summarizer conversation.Summarizer,
	index *knowledge.Index,
	cache ports.Cache,
	limiter ports.RateLimiter,
	tracer ports.Tracer,
	opts ports.Options,
	cacheTTLSeconds int,
) *Orchestrator {
	o := &Orchestrator{
		provider:        provider,
		builder:         builder,
		parser:          parser,
		summarizer:      summarizer,
		cache:           cache,
		limiter:         limiter,
		tracer:          tracer,
		opts:            opts,
		cacheTTLSeconds: cacheTTLSeconds,
	}
	o.index.Store(index)
	return o
}

// SwapKnowledge replaces the knowledge index. Safe to call concurrently
// with GenerateResponse; the file watcher uses it for hot reload.
func (o *Orchestrator) SwapKnowledge(index *knowledge.Index) {
	o.index.Store(index)
}

// GenerateResponse answers one user message within the given session.
// additional is caller-supplied context (live GitHub data, README excerpts)
// appended verbatim after the retrieved knowledge; empty means none.
func (o *Orchestrator) GenerateResponse(ctx context.Context, mgr *conversation.Manager, userMessage, additional string) (*Response, error) {
	if classify.OffTopic(userMessage) {
		if err := mgr.RecordUserTurn(userMessage); err != nil {
			return nil, err
		}
		mgr.RecordAssistantTurn(ctx, userMessage, redirectMessage)
		o.tracer.Event(ctx, "off_topic_redirect", map[string]any{"session": mgr.SessionID()})
		return &Response{
			Message:            redirectMessage,
			SuggestedQuestions: append([]string(nil), redirectSuggestions...),
			Redirected:         true,
		}, nil
	}

	if err := mgr.RecordUserTurn(userMessage); err != nil {
		return nil, err
	}

	release, err := o.limiter.Acquire(ctx, mgr.SessionID())
	if err != nil {
		mgr.ReleaseTurn()
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	defer release()

	cctx := mgr.Snapshot()
	ctx, finish := o.tracer.StartSpan(ctx, "generate_response", map[string]any{
		"session": cctx.SessionID,
		"depth":   string(cctx.Flow.Depth),
		"intent":  cctx.UserIntent,
	})

	resp, err := o.complete(ctx, cctx, userMessage, additional)
	finish(err)
	if err != nil {
		mgr.ReleaseTurn()
		return nil, err
	}

	mgr.RecordAssistantTurn(ctx, userMessage, resp.Message)
	mgr.MaybeSummarize(context.WithoutCancel(ctx), o.summarizer)
	return resp, nil
}

func (o *Orchestrator) complete(ctx context.Context, cctx conversation.Context, userMessage, additional string) (*Response, error) {
	extra := o.index.Load().Search(userMessage)
	if additional != "" {
		extra += "\n\n" + additional
	}
	system := o.builder.System(cctx, extra)
	window := o.builder.Window(cctx)

	cacheKey := buildCacheKey(system, window)
	if cached, ok := o.cache.Get(ctx, cacheKey); ok {
		o.tracer.Event(ctx, "cache_hit", map[string]any{"key": cacheKey})
		var resp Response
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		// Unreadable entry, fall through to the provider.
		_ = o.cache.Delete(ctx, cacheKey)
	}

	completion, err := o.provider.Complete(ctx,
		ports.PromptInput{System: system, Messages: window},
		o.opts)
	if err != nil {
		return nil, err
	}

	resp := o.parser.Parse(completion.Text)
	resp.Usage = completion.Usage

	if data, err := json.Marshal(resp); err == nil {
		_ = o.cache.Set(ctx, cacheKey, data, o.cacheTTLSeconds)
	}
	return &resp, nil
}

// buildCacheKey hashes the fully assembled prompt, so any change in
// history, topic, or retrieved knowledge misses the cache.
func buildCacheKey(system string, window []ports.PromptMessage) string {
	h := sha256.New()
	h.Write([]byte(system))
	for _, msg := range window {
		h.Write([]byte{0})
		h.Write([]byte(msg.Role))
		h.Write([]byte{0})
		h.Write([]byte(msg.Content))
	}
	return "resp:" + hex.EncodeToString(h.Sum(nil))
}
