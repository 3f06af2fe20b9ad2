package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/classify"
)

// ErrTurnInFlight is returned when a user turn is recorded while the
// previous one has not been answered or released yet. Sessions are strictly
// one outstanding request at a time.
var ErrTurnInFlight = errors.New("conversation: a turn is already in flight")

// Store persists session state between processes. Implementations live in
// the engine adapters.
type Store interface {
	// Load returns the stored context for key, or found=false when absent
	// or expired.
	Load(ctx context.Context, key string) (state *Context, found bool, err error)
	Save(ctx context.Context, key string, state *Context) error
	Clear(ctx context.Context, key string) error
}

// Summarizer condenses a transcript into a short summary. The engine's
// completion service implements it.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Manager owns one session's Context. All mutation goes through it, under a
// single lock, so the invariant "user and assistant turns alternate" holds
// even with concurrent callers.
type Manager struct {
	mu     sync.Mutex
	state  *Context
	store  Store
	logger zerolog.Logger

	summaryInterval int
	inFlight        bool
	rollback        *Context
	pending         *SummaryTask
}

// NewManager creates a manager for sessionKey, restoring persisted state
// when the store has it. A nil store means memory-only operation. A restore
// failure is logged and a fresh session is started; persistence problems
// never block chatting.
func NewManager(ctx context.Context, store Store, sessionKey string, summaryInterval int, logger zerolog.Logger) *Manager {
	m := &Manager{
		store:           store,
		logger:          logger,
		summaryInterval: summaryInterval,
	}

	if store != nil && sessionKey != "" {
		state, found, err := store.Load(ctx, sessionKey)
		if err != nil {
			logger.Warn().Err(err).Str("session", sessionKey).Msg("session restore failed, starting fresh")
		} else if found {
			m.state = state
			m.logger.Debug().Str("session", state.SessionID).Int("messages", len(state.Messages)).Msg("session restored")
		}
	}

	if m.state == nil {
		m.state = &Context{
			SessionID:  uuid.NewString(),
			UserIntent: classify.IntentGeneral,
			UpdatedAt:  time.Now(),
		}
		m.state.recomputeFlow()
	}
	return m
}

// SessionID returns the stable identifier of the current session.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.SessionID
}

// RecordUserTurn appends a user message and reclassifies the conversation.
// It fails with ErrTurnInFlight when the previous turn has not completed.
// A completed background summary, if any, is merged here before the turn
// is admitted.
func (m *Manager) RecordUserTurn(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inFlight {
		return ErrTurnInFlight
	}

	if m.pending != nil {
		if summary, done := m.pending.Poll(); done {
			if summary != "" {
				m.state.Summary = summary
				m.logger.Debug().Str("session", m.state.SessionID).Msg("conversation summary merged")
			}
			m.pending = nil
		}
	}

	// Captured after the summary merge, so a rollback keeps the summary but
	// undoes everything the turn itself changes.
	saved := m.state.Clone()
	m.rollback = &saved

	m.state.Messages = append(m.state.Messages, Message{
		Role:      RoleUser,
		Content:   message,
		Timestamp: time.Now(),
	})
	m.state.UserIntent = classify.Intent(message)

	topic := classify.Topic(message)
	if topic != classify.TopicGeneral {
		m.state.CurrentTopic = topic
		m.addRelatedTopic(topic)
	}

	m.state.recomputeFlow()
	m.state.UpdatedAt = time.Now()
	m.inFlight = true
	return nil
}

// RecordAssistantTurn appends the assistant reply, updates follow-up
// context, releases the turn gate, and saves the session best-effort.
func (m *Manager) RecordAssistantTurn(ctx context.Context, question, answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Messages = append(m.state.Messages, Message{
		Role:      RoleAssistant,
		Content:   answer,
		Timestamp: time.Now(),
	})
	m.state.FollowUp.LastQuestion = question
	m.state.FollowUp.LastAnswer = answer
	m.state.recomputeFlow()
	m.state.UpdatedAt = time.Now()
	m.inFlight = false
	m.rollback = nil

	if m.store != nil {
		if err := m.store.Save(ctx, m.state.SessionID, m.state); err != nil {
			m.logger.Warn().Err(err).Str("session", m.state.SessionID).Msg("session save failed")
		}
	}
}

// ReleaseTurn drops the in-flight gate and restores the state captured when
// the turn was admitted. Called on the failure path so a failed completion
// leaves the context untouched: the user message, the reclassified
// topic/intent, and the topic lists all roll back.
func (m *Manager) ReleaseTurn() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inFlight {
		return
	}
	if m.rollback != nil {
		m.state = m.rollback
		m.rollback = nil
	}
	m.inFlight = false
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Reset discards the session and starts a new one with a fresh identifier.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.state.SessionID
	m.state = &Context{
		SessionID:  uuid.NewString(),
		UserIntent: classify.IntentGeneral,
		UpdatedAt:  time.Now(),
	}
	m.state.recomputeFlow()
	m.inFlight = false
	m.rollback = nil
	m.pending = nil

	if m.store != nil {
		if err := m.store.Clear(ctx, old); err != nil {
			return err
		}
	}
	return nil
}

// MaybeSummarize kicks off a background summary once the transcript reaches
// the configured interval. At most one summary is produced per session; the
// result is merged on the next user turn.
func (m *Manager) MaybeSummarize(ctx context.Context, s Summarizer) {
	if s == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending != nil || m.state.Summary != "" {
		return
	}
	if m.summaryInterval <= 0 || len(m.state.Messages) < m.summaryInterval {
		return
	}

	transcript := Transcript(m.state.Messages)
	m.pending = startSummary(ctx, s, transcript, m.logger)
	m.logger.Debug().Str("session", m.state.SessionID).Int("messages", len(m.state.Messages)).Msg("summary started")
}

// addRelatedTopic records a topic on both the monotonic discussed list and
// the follow-up context. Duplicates are dropped, order is first-seen.
func (m *Manager) addRelatedTopic(topic string) {
	m.state.DiscussedTopics = appendUnique(m.state.DiscussedTopics, topic)
	m.state.FollowUp.RelatedTopics = appendUnique(m.state.FollowUp.RelatedTopics, topic)
}

func appendUnique(topics []string, topic string) []string {
	for _, t := range topics {
		if t == topic {
			return topics
		}
	}
	return append(topics, topic)
}
