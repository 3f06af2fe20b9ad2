package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/config"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/adapters"
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/knowledge"
)

// Factory creates and wires engine components from configuration.
type Factory struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewFactory creates an engine factory.
func NewFactory(cfg *config.Config, logger zerolog.Logger) *Factory {
	return &Factory{cfg: cfg, logger: logger}
}

// CreateOrchestrator builds a fully wired orchestrator.
func (f *Factory) CreateOrchestrator() (*Orchestrator, error) {
	base, err := f.loadKnowledge()
	if err != nil {
		return nil, err
	}

	provider := adapters.NewGroqProvider(
		f.cfg.Provider.APIKey,
		f.cfg.Provider.BaseURL,
		f.cfg.Provider.Model,
	)

	builder := NewPromptBuilder(
		f.cfg.Chatbot.OwnerName,
		f.cfg.Chatbot.OwnerTitle,
		Windows{
			Shallow:  f.cfg.Engine.ShallowWindow,
			Detailed: f.cfg.Engine.DetailedWindow,
			Deep:     f.cfg.Engine.DeepWindow,
		},
	)

	return NewOrchestrator(
		provider,
		builder,
		NewOutputParser(),
		NewSummaryService(provider, f.cfg.Chatbot.OwnerName),
		knowledge.NewIndex(base),
		f.createCache(),
		f.createRateLimiter(),
		f.createTracer(),
		ports.Options{
			MaxTokens:   f.cfg.Provider.MaxTokens,
			Temperature: f.cfg.Provider.Temperature,
			TopP:        f.cfg.Provider.TopP,
		},
		f.cfg.Engine.CacheTTLSeconds,
	), nil
}

// CreateStore builds the session store. With persistence disabled it is
// memory-backed; otherwise the libsql database at the configured path is
// opened and migrated.
func (f *Factory) CreateStore() (conversation.Store, *sql.DB, error) {
	if !f.cfg.Session.Persist {
		return adapters.NewMemoryStore(f.cfg.Session.TTL), nil, nil
	}

	db, err := adapters.OpenSessionDB(f.cfg.Session.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session database: %w", err)
	}

	store, err := adapters.NewLibSQLStore(db, f.cfg.Session.TTL, f.logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

// WatchKnowledge starts the override-file watcher when configured. With
// watching disabled it does nothing.
func (f *Factory) WatchKnowledge(ctx context.Context, o *Orchestrator) {
	if !f.cfg.Chatbot.WatchKnowledge || f.cfg.Chatbot.KnowledgeFile == "" {
		return
	}

	path := f.cfg.Chatbot.KnowledgeFile
	go func() {
		err := knowledge.Watch(ctx, path, f.logger, func(b knowledge.Base) {
			o.SwapKnowledge(knowledge.NewIndex(b))
		})
		if err != nil && ctx.Err() == nil {
			f.logger.Warn().Err(err).Str("path", path).Msg("knowledge watcher stopped")
		}
	}()
}

func (f *Factory) loadKnowledge() (knowledge.Base, error) {
	if f.cfg.Chatbot.KnowledgeFile == "" {
		return knowledge.Default(), nil
	}
	base, err := knowledge.FromFile(f.cfg.Chatbot.KnowledgeFile)
	if err != nil {
		return knowledge.Base{}, err
	}
	return base, nil
}

func (f *Factory) createCache() ports.Cache {
	if !f.cfg.Engine.CacheEnabled {
		return &noOpCache{}
	}
	return adapters.NewLRUCache(f.cfg.Engine.CacheCapacity)
}

func (f *Factory) createRateLimiter() ports.RateLimiter {
	if !f.cfg.Engine.RateLimitEnabled {
		return &noOpRateLimiter{}
	}
	return adapters.NewTokenBucket(f.cfg.Engine.RateLimitCapacity, f.cfg.Engine.RateLimitRefillRate)
}

func (f *Factory) createTracer() ports.Tracer {
	if !f.cfg.Engine.EnableTracing {
		return &noOpTracer{}
	}
	return adapters.NewZerologTracer(f.logger)
}

// noOpCache disables memoization.
type noOpCache struct{}

func (c *noOpCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (c *noOpCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	return nil
}
func (c *noOpCache) Delete(ctx context.Context, key string) error { return nil }

// noOpRateLimiter admits everything.
type noOpRateLimiter struct{}

func (r *noOpRateLimiter) Acquire(ctx context.Context, key string) (func(), error) {
	return func() {}, nil
}

// noOpTracer drops all spans and events.
type noOpTracer struct{}

func (t *noOpTracer) StartSpan(ctx context.Context, name string, attrs map[string]any) (context.Context, func(err error)) {
	return ctx, func(err error) {}
}
func (t *noOpTracer) Event(ctx context.Context, name string, attrs map[string]any) {}
