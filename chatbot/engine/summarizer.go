package engine

import (
	"context"
	"fmt"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
)

// Summary calls run colder and shorter than the main completion.
const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 200
)

// Ensure SummaryService implements the conversation summarizer.
var _ conversation.Summarizer = (*SummaryService)(nil)

// SummaryService condenses a transcript through the completion provider.
type SummaryService struct {
	provider  ports.Provider
	ownerName string
}

// NewSummaryService creates a summarizer using the given provider.
func NewSummaryService(provider ports.Provider, ownerName string) *SummaryService {
	return &SummaryService{provider: provider, ownerName: ownerName}
}

// Summarize produces a 2-3 sentence summary of the transcript.
func (s *SummaryService) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize this conversation about %s in 2-3 sentences, focusing on the main topics discussed and key information shared:\n\n%s\n\nSummary:",
		s.ownerName, transcript)

	completion, err := s.provider.Complete(ctx,
		ports.PromptInput{
			Messages: []ports.PromptMessage{{Role: "user", Content: prompt}},
		},
		ports.Options{
			Temperature: summaryTemperature,
			MaxTokens:   summaryMaxTokens,
		})
	if err != nil {
		return "", err
	}
	return completion.Text, nil
}
