package implementation

import (
	"context"

	"support-chat-be/internal/entity"
	"support-chat-be/internal/mapper"
	"support-chat-be/internal/model"
	"support-chat-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk, embeddings [][]float32) error {
	if len(chunks) == 0 {
		return nil
	}

	models := make([]*model.KnowledgeEmbedding, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c, embeddings[i])
	}

	// Batched insert keeps the statement size bounded for large doc sets
	return r.db.WithContext(ctx).CreateInBatches(models, 64).Error
}

func (r *KnowledgeRepositoryImpl) DeleteByBrand(ctx context.Context, brand string) error {
	return r.db.WithContext(ctx).Where("brand = ?", brand).Delete(&model.KnowledgeEmbedding{}).Error
}

func (r *KnowledgeRepositoryImpl) CountByBrand(ctx context.Context, brand string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeEmbedding{}).
		Where("brand = ?", brand).
		Count(&count).Error
	return count, err
}

// SearchNearest runs a cosine-distance query against pgvector. Distance is
// selected alongside the row so the threshold applies in SQL, not in Go.
func (r *KnowledgeRepositoryImpl) SearchNearest(ctx context.Context, brand string, embedding []float32, limit int, maxDistance float64) ([]*contract.ScoredChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.KnowledgeEmbedding
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("knowledge_embeddings").
		Select("knowledge_embeddings.*, embedding_value <=> ? as distance", queryVector).
		Where("brand = ?", brand).
		Where("embedding_value <=> ? <= ?", queryVector, maxDistance).
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredChunk, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredChunk{
			Chunk:    r.mapper.ToEntity(&res.KnowledgeEmbedding),
			Distance: res.Distance,
		}
	}
	return scored, nil
}
