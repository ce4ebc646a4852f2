package agentflow

import (
	"context"
	"fmt"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// ComposerAgent synthesizes the three upstream perspectives into one
// balanced response. Purely a function of its four text inputs.
type ComposerAgent struct {
	llm   domain.CompletionClient
	model string
}

func NewComposerAgent(llm domain.CompletionClient, model string) *ComposerAgent {
	return &ComposerAgent{llm: llm, model: model}
}

func (a *ComposerAgent) Name() string {
	return "composer"
}

func (a *ComposerAgent) Run(ctx context.Context, input, research, positives, flaws string) (string, error) {
	reply, err := a.llm.Complete(ctx, domain.CompletionRequest{
		Model: a.model,
		Messages: []*domain.Message{
			{Role: domain.RoleSystem, Content: composerPersona},
			{Role: domain.RoleUser, Content: fmt.Sprintf(composerTaskTemplate, input, research, positives, flaws)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", a.Name(), err)
	}
	return reply, nil
}
