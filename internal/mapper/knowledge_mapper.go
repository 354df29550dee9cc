package mapper

import (
	"support-chat-be/internal/entity"
	"support-chat-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToModel(e *entity.KnowledgeChunk, embedding []float32) *model.KnowledgeEmbedding {
	return &model.KnowledgeEmbedding{
		Id:             e.Id,
		Brand:          e.Brand,
		Question:       e.Question,
		Answer:         e.Answer,
		Category:       e.Category,
		Source:         e.Source,
		ChunkIndex:     e.ChunkIndex,
		EmbeddingValue: pgvector.NewVector(embedding),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToEntity(mo *model.KnowledgeEmbedding) *entity.KnowledgeChunk {
	return &entity.KnowledgeChunk{
		Id:         mo.Id,
		Brand:      mo.Brand,
		Question:   mo.Question,
		Answer:     mo.Answer,
		Category:   mo.Category,
		Source:     mo.Source,
		ChunkIndex: mo.ChunkIndex,
		CreatedAt:  mo.CreatedAt,
	}
}
