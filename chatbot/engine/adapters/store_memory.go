package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
)

// Ensure MemoryStore implements the conversation store.
var _ conversation.Store = (*MemoryStore)(nil)

// MemoryStore keeps sessions in process memory with a TTL. It serializes
// through JSON like the durable store so both paths exercise the same
// round-trip.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryItem
}

type memoryItem struct {
	data      []byte
	updatedAt time.Time
}

// NewMemoryStore creates a memory store. Sessions older than ttl are
// treated as absent; ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[string]memoryItem),
	}
}

func (s *MemoryStore) Load(_ context.Context, key string) (*conversation.Context, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	if s.ttl > 0 && time.Since(item.updatedAt) > s.ttl {
		delete(s.items, key)
		return nil, false, nil
	}

	var state conversation.Context
	if err := json.Unmarshal(item.data, &state); err != nil {
		delete(s.items, key)
		return nil, false, fmt.Errorf("corrupt session %s: %w", key, err)
	}
	return &state, true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, state *conversation.Context) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize session %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = memoryItem{data: data, updatedAt: time.Now()}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
