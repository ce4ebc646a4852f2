package agentflow

import (
	"context"
	"fmt"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// ResearchAgent grounds the idea in historical context and evidence.
// It never reads or writes the session transcript.
type ResearchAgent struct {
	llm   domain.CompletionClient
	model string
}

func NewResearchAgent(llm domain.CompletionClient, model string) *ResearchAgent {
	return &ResearchAgent{llm: llm, model: model}
}

func (a *ResearchAgent) Name() string {
	return "research"
}

func (a *ResearchAgent) Run(ctx context.Context, input string) (string, error) {
	reply, err := a.llm.Complete(ctx, domain.CompletionRequest{
		Model: a.model,
		Messages: []*domain.Message{
			{Role: domain.RoleSystem, Content: researchPersona},
			{Role: domain.RoleUser, Content: input},
		},
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", a.Name(), err)
	}
	return reply, nil
}
