package contract

import (
	"support-chat-be/pkg/llm"
)

// ConversationStore is the session history abstraction: an append-only
// per-conversation message log with bounded recency lookup and lazy idle
// expiry. Implementations must make concurrent appends to the same
// session id atomic; cross-session operations need no synchronization.
type ConversationStore interface {
	// GetOrCreate ensures the session exists and refreshes its idle TTL.
	GetOrCreate(sessionID string)

	// Append adds a message to the session, creating it if needed.
	Append(sessionID, role, content string)

	// Recent returns up to maxN messages oldest-to-newest, role+content
	// only. Unknown sessions yield an empty slice, never an error.
	Recent(sessionID string, maxN int) []llm.Message

	// Clear removes a single session.
	Clear(sessionID string)

	// SweepExpired removes idle-expired sessions and reports how many.
	SweepExpired() int
}
