package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one indexed unit of brand knowledge: an FAQ pair or a
// chunk of a free-text document (Question empty, Source set).
type KnowledgeChunk struct {
	Id         uuid.UUID
	Brand      string
	Question   string
	Answer     string
	Category   string
	Source     string
	ChunkIndex int
	CreatedAt  time.Time
}
