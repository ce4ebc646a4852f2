package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one role-tagged entry in a session transcript.
// Immutable once appended; owned exclusively by the transcript.
type Message struct {
	ID        MessageID
	SessionID SessionID
	Role      Role
	Content   string
	CreatedAt Timestamp
}

// Session is the lifetime state of one conversation with the system.
// The transcript always starts with exactly one system-role persona message
// and is otherwise user/assistant entries appended in call order; entries
// are never reordered or deleted.
//
// A Session is not safe for concurrent turns. Callers must finish one turn
// before starting the next for the same session.
type Session struct {
	ID        SessionID
	CreatedAt Timestamp
	UpdatedAt Timestamp

	Transcript []*Message

	// LastAnalysis holds the most recent successful full-pipeline run.
	// Replaced on the next analysis turn; nil until the first one.
	LastAnalysis *AnalysisResult
}

// NewSession creates a session whose transcript opens with the given
// system persona instruction.
func NewSession(persona string) *Session {
	now := time.Now()
	s := &Session{
		ID:        SessionID(uuid.NewString()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Transcript = append(s.Transcript, &Message{
		ID:        MessageID(uuid.NewString()),
		SessionID: s.ID,
		Role:      RoleSystem,
		Content:   persona,
		CreatedAt: now,
	})
	return s
}

// Append adds a message to the transcript and returns it.
func (s *Session) Append(role Role, content string) *Message {
	now := time.Now()
	msg := &Message{
		ID:        MessageID(uuid.NewString()),
		SessionID: s.ID,
		Role:      role,
		Content:   content,
		CreatedAt: now,
	}
	s.Transcript = append(s.Transcript, msg)
	s.UpdatedAt = now
	return msg
}

// AnalysisResult is the structured outcome of one full analysis turn.
// Fields are filled as stages complete; the record is complete only once
// every field is set.
type AnalysisResult struct {
	Input          string
	Research       string
	Positives      string
	Flaws          string
	Synthesis      string
	DeliveredReply string
}

// TurnResult is the tagged outcome of a turn: either a chat reply or a
// full analysis record, discriminated by Intent.
type TurnResult struct {
	Intent   Intent
	Chat     string
	Analysis *AnalysisResult
}
