package domain

import "context"

// CompletionRequest is one round trip to the completion service.
// System-role messages carry instructions; adapters decide how to map
// them onto the provider's wire format.
type CompletionRequest struct {
	Model    string
	Messages []*Message

	// Optional generation knobs. Zero values mean provider defaults.
	MaxOutputTokens int32
	Temperature     *float32
	TopP            *float32
}

// CompletionClient is the external language-model text-generation
// capability. Implementations return a *ServiceError on transport,
// auth or quota failure; callers do not retry.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// SessionStore keeps sessions keyed by caller-supplied identifier so
// concurrent users never share a transcript.
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
}
