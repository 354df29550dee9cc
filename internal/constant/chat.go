package constant

import "time"

// Chat message roles as stored in conversation history.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Session lifecycle. Expiry is evaluated lazily; a session persists until
// a sweep removes it.
const SessionIdleTTL = 30 * time.Minute

// Document chunking parameters for knowledge ingestion.
const (
	DocChunkSize    = 500
	DocChunkOverlap = 50
)
