package domain

import "time"

type SessionID string
type MessageID string

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Intent classifies a turn: lightweight chat vs. full multi-agent analysis.
type Intent string

const (
	IntentChat     Intent = "chat"
	IntentAnalysis Intent = "analysis"
)

type Timestamp = time.Time
