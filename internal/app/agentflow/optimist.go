package agentflow

import (
	"context"
	"fmt"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// OptimistAgent frames the idea in terms of strengths and opportunities,
// working from the input and the research agent's findings.
type OptimistAgent struct {
	llm   domain.CompletionClient
	model string
}

func NewOptimistAgent(llm domain.CompletionClient, model string) *OptimistAgent {
	return &OptimistAgent{llm: llm, model: model}
}

func (a *OptimistAgent) Name() string {
	return "optimist"
}

func (a *OptimistAgent) Run(ctx context.Context, input, research string) (string, error) {
	temp := float32(0.6)
	topP := float32(1.0)

	reply, err := a.llm.Complete(ctx, domain.CompletionRequest{
		Model: a.model,
		Messages: []*domain.Message{
			{Role: domain.RoleSystem, Content: optimistPersona},
			{Role: domain.RoleUser, Content: fmt.Sprintf(optimistTaskTemplate, input, research)},
		},
		MaxOutputTokens: 512,
		Temperature:     &temp,
		TopP:            &topP,
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", a.Name(), err)
	}
	return reply, nil
}
