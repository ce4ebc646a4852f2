package agentflow

import (
	"context"
	"fmt"
	"slices"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// ConversationalAgent owns the two transcript-mutating stages: the
// lightweight chat reply and the final analysis delivery.
type ConversationalAgent struct {
	llm   domain.CompletionClient
	model string
}

func NewConversationalAgent(llm domain.CompletionClient, model string) *ConversationalAgent {
	return &ConversationalAgent{llm: llm, model: model}
}

func (a *ConversationalAgent) Name() string {
	return "conversational"
}

// Chat produces a brief reply that invites the user toward an analyzable
// idea. It appends the user message and the assistant reply to the
// transcript. The one-off instruction rides along as the last message of
// the completion call only; it is never stored.
func (a *ConversationalAgent) Chat(ctx context.Context, session *domain.Session, input string) (string, error) {
	session.Append(domain.RoleUser, input)

	messages := slices.Clone(session.Transcript)
	messages = append(messages, &domain.Message{
		Role:    domain.RoleSystem,
		Content: fmt.Sprintf(chatInstructionTemplate, input),
	})

	reply, err := a.llm.Complete(ctx, domain.CompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", a.Name(), err)
	}

	session.Append(domain.RoleAssistant, reply)
	return reply, nil
}

// Deliver reframes the composed synthesis as a natural reply, using the
// full running transcript as context. It appends exactly four entries:
// the user input, the raw synthesis as a provisional assistant turn, the
// delivery instruction as a user-role message, and the delivered reply.
// Storing the raw synthesis keeps the transcript a faithful log of the
// substantive content, separate from the stylistic rewrite.
func (a *ConversationalAgent) Deliver(ctx context.Context, session *domain.Session, input, synthesis string) (string, error) {
	session.Append(domain.RoleUser, input)
	session.Append(domain.RoleAssistant, synthesis)
	session.Append(domain.RoleUser, fmt.Sprintf(deliveryInstructionTemplate, input, synthesis))

	reply, err := a.llm.Complete(ctx, domain.CompletionRequest{
		Model:    a.model,
		Messages: session.Transcript,
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", a.Name(), err)
	}

	session.Append(domain.RoleAssistant, reply)
	return reply, nil
}
