// Package rag declares the shared types and collaborator contracts of the
// response-generation pipeline: retrieved knowledge snippets, the vector
// search service and the per-session conversation history.
package rag

import (
	"context"

	"support-chat-be/pkg/llm"
)

// Retrieval defaults. MaxDistance is a cosine-distance cutoff; anything
// farther than 1.5 is too dissimilar to show the model.
const (
	DefaultTopK = 3
	MaxDistance = 1.5
)

// Snippet is one retrieved unit of knowledge: an FAQ pair (Question set)
// or a free-text document chunk (Question empty).
type Snippet struct {
	Question string
	Answer   string
	Category string
	Distance float64 // lower = more similar
}

// Retriever is the similarity search service consumed by the pipeline.
// Results come back ordered by ascending distance and already filtered to
// MaxDistance. An empty result is valid, not an error.
type Retriever interface {
	Search(ctx context.Context, brand, query string, topK int) ([]Snippet, error)
}

// HistoryStore supplies bounded recent conversation history for prompt
// assembly. Unknown sessions yield an empty slice, never an error.
type HistoryStore interface {
	Recent(sessionID string, maxN int) []llm.Message
}
