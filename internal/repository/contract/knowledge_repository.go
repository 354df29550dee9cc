package contract

import (
	"context"

	"support-chat-be/internal/entity"
)

// ScoredChunk wraps a KnowledgeChunk with its cosine distance to the query
// (lower = more similar).
type ScoredChunk struct {
	Chunk    *entity.KnowledgeChunk
	Distance float64
}

type KnowledgeRepository interface {
	// CreateBulk inserts chunks with their embeddings; the two slices are
	// index-aligned.
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk, embeddings [][]float32) error
	DeleteByBrand(ctx context.Context, brand string) error
	CountByBrand(ctx context.Context, brand string) (int64, error)
	// SearchNearest returns the closest chunks for a brand ordered by
	// ascending distance, excluding anything beyond maxDistance.
	SearchNearest(ctx context.Context, brand string, embedding []float32, limit int, maxDistance float64) ([]*ScoredChunk, error)
}
