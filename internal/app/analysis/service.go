package analysis

import (
	"context"

	"github.com/debater-ai/debater-agent/internal/app/agentflow"
	"github.com/debater-ai/debater-agent/internal/domain"
	"github.com/debater-ai/debater-agent/internal/observability"
)

// Service is the turn entry point shared by the HTTP and CLI surfaces.
// It keys sessions by caller-supplied identifier in an injectable store,
// so concurrent users never share a transcript, and delegates the turn
// itself to the orchestrator.
type Service struct {
	store        domain.SessionStore
	orchestrator *agentflow.Orchestrator
}

func NewService(llm domain.CompletionClient, store domain.SessionStore, model string) *Service {
	return &Service{
		store:        store,
		orchestrator: agentflow.NewOrchestrator(llm, model),
	}
}

type TurnInput struct {
	// SessionID continues an existing conversation; empty starts a new one.
	SessionID domain.SessionID
	Idea      string
}

type TurnOutput struct {
	SessionID domain.SessionID
	Result    domain.TurnResult
}

// ClassifyIntent reports how a turn with this input would be routed,
// without running any agent stage.
func (s *Service) ClassifyIntent(ctx context.Context, in TurnInput) (domain.SessionID, domain.Intent, error) {
	session, err := s.session(ctx, in.SessionID)
	if err != nil {
		return "", "", err
	}

	intent, err := s.orchestrator.Classify(ctx, in.Idea)
	if err != nil {
		return "", "", err
	}
	return session.ID, intent, nil
}

// ChatTurn runs a chat-only turn, skipping the classifier.
func (s *Service) ChatTurn(ctx context.Context, in TurnInput) (*TurnOutput, error) {
	session, err := s.session(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	ctx = observability.WithSessionID(ctx, string(session.ID))

	reply, err := s.orchestrator.ChatTurn(ctx, session, in.Idea)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateSession(session); err != nil {
		return nil, err
	}

	return &TurnOutput{
		SessionID: session.ID,
		Result:    domain.TurnResult{Intent: domain.IntentChat, Chat: reply},
	}, nil
}

// ProcessTurn runs one full orchestrated turn: intent routing and either
// the chat path or the complete analysis pipeline.
func (s *Service) ProcessTurn(ctx context.Context, in TurnInput) (*TurnOutput, error) {
	session, err := s.session(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	ctx = observability.WithSessionID(ctx, string(session.ID))

	result, err := s.orchestrator.ProcessTurn(ctx, session, in.Idea)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateSession(session); err != nil {
		return nil, err
	}

	return &TurnOutput{SessionID: session.ID, Result: result}, nil
}

// session loads an existing session or creates a fresh one whose
// transcript opens with the conversational persona.
func (s *Service) session(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	if id != "" {
		return s.store.GetSession(id)
	}

	session := domain.NewSession(agentflow.ConversationalPersona)
	if err := s.store.CreateSession(session); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info("session created", "session_id", string(session.ID))
	return session, nil
}
