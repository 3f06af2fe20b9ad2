package conversation

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
)

// Transcript renders messages as "role: content" lines for summarization.
func Transcript(messages []Message) string {
	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = msg.Role + ": " + msg.Content
	}
	return strings.Join(lines, "\n")
}

// SummaryTask is a fire-and-forget summarization running off the request
// path. Poll is non-blocking; the Manager merges the result on a later turn.
type SummaryTask struct {
	done chan struct{}

	mu      sync.Mutex
	summary string
	err     error
}

func startSummary(ctx context.Context, s Summarizer, transcript string, logger zerolog.Logger) *SummaryTask {
	t := &SummaryTask{done: make(chan struct{})}

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		out, err := s.Summarize(ctx, transcript)
		t.mu.Lock()
		t.summary, t.err = out, err
		t.mu.Unlock()
	})

	go func() {
		defer close(t.done)
		if recovered := wg.WaitAndRecover(); recovered != nil {
			t.mu.Lock()
			t.err = recovered.AsError()
			t.mu.Unlock()
		}
		t.mu.Lock()
		err := t.err
		t.mu.Unlock()
		if err != nil {
			// A missing summary only costs prompt quality.
			logger.Warn().Err(err).Msg("conversation summary failed")
		}
	}()

	return t
}

// Poll reports whether the task finished and, if so, its summary. A failed
// task finishes with an empty summary.
func (t *SummaryTask) Poll() (string, bool) {
	select {
	case <-t.done:
	default:
		return "", false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return "", true
	}
	return t.summary, true
}

// Wait blocks until the task finishes. Used by tests and shutdown paths.
func (t *SummaryTask) Wait() {
	<-t.done
}
