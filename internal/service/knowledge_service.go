package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"support-chat-be/internal/constant"
	"support-chat-be/internal/entity"
	"support-chat-be/internal/pkg/logger"
	"support-chat-be/internal/repository/contract"
	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/embedding"
	"support-chat-be/pkg/rag"
	"support-chat-be/pkg/utils"

	"github.com/google/uuid"
)

// IKnowledgeService ingests brand knowledge and serves similarity search.
// It is the concrete rag.Retriever behind the response pipeline.
type IKnowledgeService interface {
	rag.Retriever
	Rebuild(ctx context.Context) error
	RebuildBrand(ctx context.Context, brandKey string) (int, error)
	Count(ctx context.Context, brandKey string) (int64, error)
}

// faqEntry mirrors the per-brand FAQ JSON file layout.
type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type knowledgeService struct {
	brands            *brand.Registry
	repo              contract.KnowledgeRepository
	embeddingProvider embedding.Provider
	logger            logger.ILogger
}

func NewKnowledgeService(
	brands *brand.Registry,
	repo contract.KnowledgeRepository,
	embeddingProvider embedding.Provider,
	logger logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		brands:            brands,
		repo:              repo,
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// Search embeds the query and returns the nearest chunks for the brand,
// already filtered by the distance cutoff. Unknown brands get an empty
// result rather than an error; the pipeline treats both the same.
func (ks *knowledgeService) Search(ctx context.Context, brandKey, query string, topK int) ([]rag.Snippet, error) {
	if _, err := ks.brands.Get(brandKey); err != nil {
		return nil, nil
	}
	if topK <= 0 {
		topK = rag.DefaultTopK
	}

	vector, err := ks.embeddingProvider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored, err := ks.repo.SearchNearest(ctx, brandKey, vector, topK, rag.MaxDistance)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	snippets := make([]rag.Snippet, 0, len(scored))
	for _, sc := range scored {
		snippets = append(snippets, rag.Snippet{
			Question: sc.Chunk.Question,
			Answer:   sc.Chunk.Answer,
			Category: sc.Chunk.Category,
			Distance: sc.Distance,
		})
	}
	return snippets, nil
}

// Rebuild reindexes every brand. A brand with missing data files indexes
// whatever is present; only storage failures abort.
func (ks *knowledgeService) Rebuild(ctx context.Context) error {
	for _, key := range ks.brands.Keys() {
		count, err := ks.RebuildBrand(ctx, key)
		if err != nil {
			return fmt.Errorf("rebuild %s: %w", key, err)
		}
		ks.logger.Info("knowledge", "indexed brand knowledge", map[string]interface{}{
			"brand":  key,
			"chunks": count,
		})
	}
	return nil
}

// RebuildBrand drops and reindexes one brand's collection, returning the
// number of chunks written.
func (ks *knowledgeService) RebuildBrand(ctx context.Context, brandKey string) (int, error) {
	profile, err := ks.brands.Get(brandKey)
	if err != nil {
		return 0, err
	}

	chunks := ks.loadFAQs(profile)
	chunks = append(chunks, ks.loadDocs(profile)...)
	if len(chunks) == 0 {
		ks.logger.Warn("knowledge", "no knowledge files found for brand", map[string]interface{}{
			"brand": brandKey,
		})
	}

	embeddings := make([][]float32, 0, len(chunks))
	indexed := make([]*entity.KnowledgeChunk, 0, len(chunks))
	for _, chunk := range chunks {
		// Question and answer embed together for richer similarity
		text := chunk.Answer
		if chunk.Question != "" {
			text = fmt.Sprintf("Q: %s\nA: %s", chunk.Question, chunk.Answer)
		}
		vector, err := ks.embeddingProvider.Embed(ctx, text)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunk: %w", err)
		}
		indexed = append(indexed, chunk)
		embeddings = append(embeddings, vector)
	}

	if err := ks.repo.DeleteByBrand(ctx, brandKey); err != nil {
		return 0, fmt.Errorf("failed to clear old chunks: %w", err)
	}
	if len(indexed) == 0 {
		return 0, nil
	}
	if err := ks.repo.CreateBulk(ctx, indexed, embeddings); err != nil {
		return 0, fmt.Errorf("failed to store chunks: %w", err)
	}
	return len(indexed), nil
}

func (ks *knowledgeService) Count(ctx context.Context, brandKey string) (int64, error) {
	return ks.repo.CountByBrand(ctx, brandKey)
}

// loadFAQs reads the brand FAQ JSON; a missing or malformed file degrades
// to an empty set.
func (ks *knowledgeService) loadFAQs(profile *brand.Profile) []*entity.KnowledgeChunk {
	raw, err := os.ReadFile(profile.FAQFile)
	if err != nil {
		ks.logger.Warn("knowledge", "FAQ file unavailable", map[string]interface{}{
			"brand": profile.Key,
			"file":  profile.FAQFile,
		})
		return nil
	}

	var entries []faqEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		ks.logger.Warn("knowledge", "FAQ file is not valid JSON", map[string]interface{}{
			"brand": profile.Key,
			"file":  profile.FAQFile,
		})
		return nil
	}

	now := time.Now()
	chunks := make([]*entity.KnowledgeChunk, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Answer) == "" {
			continue
		}
		if e.Category == "" {
			e.Category = "general"
		}
		chunks = append(chunks, &entity.KnowledgeChunk{
			Id:        uuid.New(),
			Brand:     profile.Key,
			Question:  e.Question,
			Answer:    e.Answer,
			Category:  e.Category,
			CreatedAt: now,
		})
	}
	return chunks
}

// loadDocs chunks every .txt file in the brand docs directory.
func (ks *knowledgeService) loadDocs(profile *brand.Profile) []*entity.KnowledgeChunk {
	files, err := filepath.Glob(filepath.Join(profile.DocsDir, "*.txt"))
	if err != nil || len(files) == 0 {
		return nil
	}

	now := time.Now()
	var chunks []*entity.KnowledgeChunk
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			ks.logger.Warn("knowledge", "doc file unreadable", map[string]interface{}{
				"brand": profile.Key,
				"file":  file,
			})
			continue
		}
		text := strings.TrimSpace(string(raw))
		if text == "" {
			continue
		}
		for i, piece := range utils.SplitText(text, constant.DocChunkSize, constant.DocChunkOverlap) {
			chunks = append(chunks, &entity.KnowledgeChunk{
				Id:         uuid.New(),
				Brand:      profile.Key,
				Answer:     piece,
				Category:   "document",
				Source:     filepath.Base(file),
				ChunkIndex: i,
				CreatedAt:  now,
			})
		}
	}
	return chunks
}
