package agentflow

import (
	"context"
	"fmt"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// DevilAgent mirrors the optimist with a risk and flaw framing. A slightly
// hotter temperature keeps the critique sharp rather than formulaic.
type DevilAgent struct {
	llm   domain.CompletionClient
	model string
}

func NewDevilAgent(llm domain.CompletionClient, model string) *DevilAgent {
	return &DevilAgent{llm: llm, model: model}
}

func (a *DevilAgent) Name() string {
	return "devil"
}

func (a *DevilAgent) Run(ctx context.Context, input, research string) (string, error) {
	temp := float32(0.9)

	reply, err := a.llm.Complete(ctx, domain.CompletionRequest{
		Model: a.model,
		Messages: []*domain.Message{
			{Role: domain.RoleSystem, Content: devilPersona},
			{Role: domain.RoleUser, Content: fmt.Sprintf(devilTaskTemplate, input, research)},
		},
		MaxOutputTokens: 512,
		Temperature:     &temp,
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", a.Name(), err)
	}
	return reply, nil
}
