package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/adapters"
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/knowledge"
)

type stubProvider struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error

	lastInput ports.PromptInput
	lastOpts  ports.Options
}

func (p *stubProvider) Complete(_ context.Context, input ports.PromptInput, opts ports.Options) (ports.Completion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.lastInput = input
	p.lastOpts = opts
	if p.err != nil {
		return ports.Completion{}, p.err
	}
	return ports.Completion{
		Text:  p.text,
		Usage: ports.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newTestOrchestrator(provider ports.Provider, cache ports.Cache) *Orchestrator {
	return NewOrchestrator(
		provider,
		NewPromptBuilder("Dhruba Kumar Agarwalla", "AI-Orchestrated Full-Stack Developer", DefaultWindows()),
		NewOutputParser(),
		nil,
		knowledge.NewIndex(knowledge.Default()),
		cache,
		adapters.NewTokenBucket(1, 0),
		&noOpTracer{},
		ports.Options{MaxTokens: 1500, Temperature: 0.7, TopP: 0.9},
		3600,
	)
}

func newTestManager() *conversation.Manager {
	return conversation.NewManager(context.Background(), nil, "", 10, zerolog.Nop())
}

func TestOffTopicSkipsProvider(t *testing.T) {
	provider := &stubProvider{text: "never"}
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	resp, err := o.GenerateResponse(context.Background(), mgr, "what's the weather like today", "")
	require.NoError(t, err)

	assert.True(t, resp.Redirected)
	assert.Equal(t, redirectMessage, resp.Message)
	assert.Len(t, resp.SuggestedQuestions, 4)
	assert.Zero(t, provider.callCount())

	// The redirect is still a full turn on the transcript.
	snap := mgr.Snapshot()
	assert.Len(t, snap.Messages, 2)
	assert.Equal(t, redirectMessage, snap.Messages[1].Content)
}

func TestGenerateResponseSuccess(t *testing.T) {
	provider := &stubProvider{text: "GitIQ analyzes repositories. Check it out at [GitIQ](https://gitiq.vercel.app/).\nSUGGESTED_QUESTIONS: How fast is it?, What AI does it use?"}
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	resp, err := o.GenerateResponse(context.Background(), mgr, "tell me about gitiq", "")
	require.NoError(t, err)

	assert.False(t, resp.Redirected)
	assert.Equal(t, provider.text, resp.Message)
	assert.Equal(t, []string{"How fast is it?", "What AI does it use?"}, resp.SuggestedQuestions)
	assert.Contains(t, resp.ProjectReferences, "gitiq")
	require.Len(t, resp.Links, 1)
	assert.Equal(t, LinkTypeDemo, resp.Links[0].Type)
	assert.Equal(t, 30, resp.Usage.TotalTokens)

	snap := mgr.Snapshot()
	assert.Len(t, snap.Messages, 2)
	assert.Equal(t, "GitIQ", snap.CurrentTopic)

	// The model saw the retrieved project context and the tuned options.
	assert.Contains(t, provider.lastInput.System, "PROJECT: GitIQ")
	assert.Equal(t, 1500, provider.lastOpts.MaxTokens)
	assert.InDelta(t, 0.7, provider.lastOpts.Temperature, 1e-9)
	assert.InDelta(t, 0.9, provider.lastOpts.TopP, 1e-9)
}

func TestProviderFailureRollsBackTurn(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("%w: status 500", ports.ErrTransport)}
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	_, err := o.GenerateResponse(context.Background(), mgr, "tell me about gitiq", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrTransport)

	// Failed turn leaves no trace, classification included; the next
	// attempt is admitted.
	snap := mgr.Snapshot()
	assert.Empty(t, snap.Messages)
	assert.Empty(t, snap.CurrentTopic)
	assert.Empty(t, snap.DiscussedTopics)
	assert.Empty(t, snap.FollowUp.RelatedTopics)
	provider.err = nil
	provider.text = "GitIQ is an analysis tool."
	_, err = o.GenerateResponse(context.Background(), mgr, "tell me about gitiq", "")
	assert.NoError(t, err)
}

func TestMissingAPIKeySurfacesConfigurationError(t *testing.T) {
	provider := adapters.NewGroqProvider("", "http://localhost:0", "test-model")
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	_, err := o.GenerateResponse(context.Background(), mgr, "tell me about gitiq", "")
	assert.ErrorIs(t, err, ports.ErrConfiguration)
}

func TestRepeatQuestionServedFromCache(t *testing.T) {
	provider := &stubProvider{text: "GitIQ categorizes commits with AI."}
	o := newTestOrchestrator(provider, adapters.NewLRUCache(16))

	// Two separate sessions asking the identical first question.
	mgr1 := newTestManager()
	first, err := o.GenerateResponse(context.Background(), mgr1, "tell me about gitiq", "")
	require.NoError(t, err)
	require.Equal(t, 1, provider.callCount())

	mgr2 := newTestManager()
	second, err := o.GenerateResponse(context.Background(), mgr2, "tell me about gitiq", "")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, first.Message, second.Message)

	// Both transcripts advanced even though one answer was cached.
	assert.Len(t, mgr2.Snapshot().Messages, 2)
}

func TestTurnGatePropagates(t *testing.T) {
	provider := &stubProvider{text: "answer"}
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	require.NoError(t, mgr.RecordUserTurn("pending question about gitiq"))

	_, err := o.GenerateResponse(context.Background(), mgr, "another question about gitiq", "")
	assert.ErrorIs(t, err, conversation.ErrTurnInFlight)
	assert.Zero(t, provider.callCount())
}

func TestSwapKnowledgeChangesRetrieval(t *testing.T) {
	provider := &stubProvider{text: "answer"}
	o := newTestOrchestrator(provider, &noOpCache{})

	base := knowledge.Default()
	base.Projects[2].DetailedDescription = "A rebuilt repository insight tool."
	o.SwapKnowledge(knowledge.NewIndex(base))

	mgr := newTestManager()
	_, err := o.GenerateResponse(context.Background(), mgr, "tell me about gitiq", "")
	require.NoError(t, err)
	assert.Contains(t, provider.lastInput.System, "A rebuilt repository insight tool.")
}

func TestAdditionalContextAppended(t *testing.T) {
	provider := &stubProvider{text: "answer"}
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	_, err := o.GenerateResponse(context.Background(), mgr, "tell me about gitiq", "GITHUB STARS: 42")
	require.NoError(t, err)

	// Caller-supplied context rides after the retrieved knowledge.
	assert.Contains(t, provider.lastInput.System, "PROJECT: GitIQ")
	assert.Contains(t, provider.lastInput.System, "GITHUB STARS: 42")
}

func TestSummaryServicePrompt(t *testing.T) {
	provider := &stubProvider{text: "They talked about GitIQ."}
	s := NewSummaryService(provider, "Dhruba Kumar Agarwalla")

	out, err := s.Summarize(context.Background(), "user: hi\nassistant: hello")
	require.NoError(t, err)
	assert.Equal(t, "They talked about GitIQ.", out)

	assert.Empty(t, provider.lastInput.System)
	require.Len(t, provider.lastInput.Messages, 1)
	assert.Contains(t, provider.lastInput.Messages[0].Content, "Summarize this conversation about Dhruba Kumar Agarwalla")
	assert.Contains(t, provider.lastInput.Messages[0].Content, "user: hi")
	assert.InDelta(t, summaryTemperature, provider.lastOpts.Temperature, 1e-9)
	assert.Equal(t, summaryMaxTokens, provider.lastOpts.MaxTokens)
}

func TestRateLimiterBoundsSessions(t *testing.T) {
	bucket := adapters.NewTokenBucket(1, 0)

	release, err := bucket.Acquire(context.Background(), "sess")
	require.NoError(t, err)

	_, err = bucket.Acquire(context.Background(), "sess")
	assert.ErrorIs(t, err, adapters.ErrRateLimited)

	// Another session is unaffected.
	release2, err := bucket.Acquire(context.Background(), "other")
	require.NoError(t, err)
	release2()

	release()
	_, err = bucket.Acquire(context.Background(), "sess")
	assert.NoError(t, err)
}

func TestRollbackOnlyAfterGateErr(t *testing.T) {
	provider := &stubProvider{err: errors.New("boom")}
	o := newTestOrchestrator(provider, &noOpCache{})
	mgr := newTestManager()

	require.NoError(t, mgr.RecordUserTurn("pending question about gitiq"))

	// The in-flight turn belongs to the earlier caller; a rejected request
	// must not roll it back.
	_, err := o.GenerateResponse(context.Background(), mgr, "another question about gitiq", "")
	require.ErrorIs(t, err, conversation.ErrTurnInFlight)
	assert.Len(t, mgr.Snapshot().Messages, 1)
}
