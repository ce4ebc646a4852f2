package agentflow

import (
	"context"
	"time"

	"github.com/debater-ai/debater-agent/internal/domain"
	"github.com/debater-ai/debater-agent/internal/observability"
)

type turnState string

const (
	stateIdle              turnState = "idle"
	stateClassifying       turnState = "classifying"
	stateChatting          turnState = "chatting"
	stateResearching       turnState = "researching"
	stateAnalyzingParallel turnState = "analyzing_parallel"
	stateComposing         turnState = "composing"
	stateDelivering        turnState = "delivering"
)

// parallelWorkers bounds the optimist/devil fan-out pool.
const parallelWorkers = 2

// Orchestrator runs one user turn through the agent pipeline: intent
// routing, then either a chat reply or
// research -> {optimist, devil} -> composer -> delivery.
//
// The orchestrator itself holds no per-turn state; all session mutation
// happens through the *domain.Session passed in. It provides no mutual
// exclusion across turns — callers must not run two turns for the same
// session concurrently.
type Orchestrator struct {
	classifier *IntentClassifier
	research   *ResearchAgent
	optimist   *OptimistAgent
	devil      *DevilAgent
	composer   *ComposerAgent
	convo      *ConversationalAgent
}

func NewOrchestrator(llm domain.CompletionClient, model string) *Orchestrator {
	return &Orchestrator{
		classifier: NewIntentClassifier(llm, model),
		research:   NewResearchAgent(llm, model),
		optimist:   NewOptimistAgent(llm, model),
		devil:      NewDevilAgent(llm, model),
		composer:   NewComposerAgent(llm, model),
		convo:      NewConversationalAgent(llm, model),
	}
}

// Classify exposes the intent decision without running a turn.
func (o *Orchestrator) Classify(ctx context.Context, input string) (domain.Intent, error) {
	return o.classifier.Classify(ctx, input)
}

// ChatTurn runs a chat-only turn, bypassing the classifier.
func (o *Orchestrator) ChatTurn(ctx context.Context, session *domain.Session, input string) (string, error) {
	return o.convo.Chat(ctx, session, input)
}

// ProcessTurn runs one full turn and returns a tagged result: a chat
// reply when the classifier is not ready, otherwise the complete
// analysis record. Any stage failure aborts the turn; LastAnalysis is
// only replaced after the delivery stage succeeds.
func (o *Orchestrator) ProcessTurn(ctx context.Context, session *domain.Session, input string) (domain.TurnResult, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", string(session.ID))

	state := stateIdle
	advance := func(next turnState) {
		log.Info("state transition", "from", string(state), "to", string(next))
		state = next
	}

	start := time.Now()

	advance(stateClassifying)
	intent, err := o.classifier.Classify(ctx, input)
	if err != nil {
		return domain.TurnResult{}, err
	}

	if intent == domain.IntentChat {
		advance(stateChatting)
		reply, err := o.convo.Chat(ctx, session, input)
		if err != nil {
			return domain.TurnResult{}, err
		}
		advance(stateIdle)
		log.Info("chat turn completed", "elapsed_ms", time.Since(start).Milliseconds())
		return domain.TurnResult{Intent: domain.IntentChat, Chat: reply}, nil
	}

	// Research must finish before either parallel branch starts: both
	// receive its output as context.
	advance(stateResearching)
	research, err := o.research.Run(ctx, input)
	if err != nil {
		return domain.TurnResult{}, err
	}

	advance(stateAnalyzingParallel)
	branches, err := runGroup(ctx, parallelWorkers, []Task{
		{Name: o.optimist.Name(), Run: func(ctx context.Context) (string, error) {
			return o.optimist.Run(ctx, input, research)
		}},
		{Name: o.devil.Name(), Run: func(ctx context.Context) (string, error) {
			return o.devil.Run(ctx, input, research)
		}},
	})
	if err != nil {
		return domain.TurnResult{}, err
	}
	positives, flaws := branches[0], branches[1]

	advance(stateComposing)
	synthesis, err := o.composer.Run(ctx, input, research, positives, flaws)
	if err != nil {
		return domain.TurnResult{}, err
	}

	advance(stateDelivering)
	delivered, err := o.convo.Deliver(ctx, session, input, synthesis)
	if err != nil {
		return domain.TurnResult{}, err
	}

	result := &domain.AnalysisResult{
		Input:          input,
		Research:       research,
		Positives:      positives,
		Flaws:          flaws,
		Synthesis:      synthesis,
		DeliveredReply: delivered,
	}
	session.LastAnalysis = result

	advance(stateIdle)
	log.Info("analysis turn completed", "elapsed_ms", time.Since(start).Milliseconds())

	return domain.TurnResult{Intent: domain.IntentAnalysis, Analysis: result}, nil
}
