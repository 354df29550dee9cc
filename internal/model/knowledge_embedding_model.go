package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type KnowledgeEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand          string          `gorm:"type:varchar(64);not null;index"`
	Question       string          `gorm:"type:text"`
	Answer         string          `gorm:"type:text;not null"`
	Category       string          `gorm:"type:varchar(64)"`
	Source         string          `gorm:"type:varchar(255)"` // doc filename, empty for FAQ entries
	ChunkIndex     int             `gorm:"default:0"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgeEmbedding) TableName() string {
	return "knowledge_embeddings"
}
