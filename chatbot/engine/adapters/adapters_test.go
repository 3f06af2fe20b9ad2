package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
)

func TestLRUCacheEvictsOldest(t *testing.T) {
	c := NewLRUCache(2)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 60))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 60))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, c.Set(ctx, "c", []byte("3"), 60))

	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
	v, ok := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)
}

func TestLRUCacheExpiry(t *testing.T) {
	c := NewLRUCache(4)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestLRUCacheUpdateAndDelete(t *testing.T) {
	c := NewLRUCache(4)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v1"), 60))
	require.NoError(t, c.Set(ctx, "k", []byte("v2"), 60))

	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 10*time.Millisecond)

	_, err := tb.Acquire(context.Background(), "k")
	require.NoError(t, err)

	_, err = tb.Acquire(context.Background(), "k")
	require.ErrorIs(t, err, ErrRateLimited)

	time.Sleep(15 * time.Millisecond)
	_, err = tb.Acquire(context.Background(), "k")
	assert.NoError(t, err)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	state := &conversation.Context{SessionID: "sess"}
	state.Messages = []conversation.Message{{Role: conversation.RoleUser, Content: "hi", Timestamp: time.Now().UTC()}}

	require.NoError(t, s.Save(ctx, "sess", state))

	// Mutating the original must not leak into the stored copy.
	state.Messages[0].Content = "mutated"

	loaded, found, err := s.Load(ctx, "sess")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "hi", loaded.Messages[0].Content)
}

func TestMemoryStoreTTL(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess", &conversation.Context{SessionID: "sess"}))
	time.Sleep(5 * time.Millisecond)

	_, found, err := s.Load(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess", &conversation.Context{SessionID: "sess"}))
	require.NoError(t, s.Clear(ctx, "sess"))

	_, found, err := s.Load(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContextSchemaCompiles(t *testing.T) {
	_, err := NewLibSQLStore(nil, time.Hour, zerolog.Nop())
	assert.NoError(t, err)
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"id":    "cmpl-1",
		"model": "test-model",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{"prompt_tokens": 5, "completion_tokens": 7, "total_tokens": 12},
	})
	require.NoError(t, err)
	return data
}

func TestGroqProviderComplete(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write(completionBody(t, "hello from the model"))
	}))
	defer srv.Close()

	p := NewGroqProvider("key-123", srv.URL, "test-model")
	got, err := p.Complete(context.Background(),
		ports.PromptInput{
			System:   "be brief",
			Messages: []ports.PromptMessage{{Role: "user", Content: "hi"}},
		},
		ports.Options{MaxTokens: 100, Temperature: 0.7, TopP: 0.9})
	require.NoError(t, err)

	assert.Equal(t, "hello from the model", got.Text)
	assert.Equal(t, 12, got.Usage.TotalTokens)
	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.False(t, gotReq.Stream)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be brief", gotReq.Messages[0].Content)
}

func TestGroqProviderMissingKey(t *testing.T) {
	p := NewGroqProvider("", "http://localhost:0", "test-model")

	_, err := p.Complete(context.Background(), ports.PromptInput{}, ports.Options{})
	assert.ErrorIs(t, err, ports.ErrConfiguration)
}

func TestGroqProviderTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewGroqProvider("key", srv.URL, "test-model")
	_, err := p.Complete(context.Background(), ports.PromptInput{}, ports.Options{})
	require.ErrorIs(t, err, ports.ErrTransport)
	assert.Contains(t, err.Error(), "502")
}

func TestGroqProviderEmptyResponses(t *testing.T) {
	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		p := NewGroqProvider("key", srv.URL, "test-model")
		_, err := p.Complete(context.Background(), ports.PromptInput{}, ports.Options{})
		assert.ErrorIs(t, err, ports.ErrEmptyResponse)
	})

	t.Run("empty content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(completionBody(t, ""))
		}))
		defer srv.Close()

		p := NewGroqProvider("key", srv.URL, "test-model")
		_, err := p.Complete(context.Background(), ports.PromptInput{}, ports.Options{})
		assert.ErrorIs(t, err, ports.ErrEmptyResponse)
	})
}
