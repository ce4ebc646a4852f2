package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// MockLLM is an offline stand-in for the completion service, useful for
// local development without a credential (DEBATER_USE_MOCK_LLM=1).
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", &domain.ServiceError{Op: "mock complete", Err: errors.New("no messages")}
	}

	last := req.Messages[len(req.Messages)-1]

	// Answer the intent router so the mock exercises the full pipeline.
	// Short inputs never reach the router; they short-circuit to chat.
	if strings.Contains(last.Content, "READY or NOT_READY") {
		return "READY", nil
	}

	return fmt.Sprintf("[mock reply] I read %d message(s); the last one said: %.80q", len(req.Messages), last.Content), nil
}
