// Seed rebuilds the vector knowledge base for every brand (or a single
// brand passed as the first argument) from the FAQ and docs files on disk.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"support-chat-be/internal/config"
	"support-chat-be/internal/model"
	"support-chat-be/internal/pkg/logger"
	"support-chat-be/internal/repository/implementation"
	"support-chat-be/internal/service"
	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/database"
	"support-chat-be/pkg/embedding"
	"support-chat-be/pkg/llm/ollama"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	color.Cyan("=== Knowledge Base Seeder ===")

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("✗ Database connection failed: %v", err)
		os.Exit(1)
	}
	if err := database.Migrate(gormDB, &model.KnowledgeEmbedding{}); err != nil {
		color.Red("✗ Schema migration failed: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Database ready")

	llmProvider := ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)
	if !llmProvider.Health(context.Background()) {
		color.Yellow("! Ollama is not reachable at %s; embedding will fail", cfg.Ai.OllamaBaseURL)
	}

	brands := brand.NewRegistry(cfg.App.PromptsDir, cfg.App.KnowledgeDir)
	embeddingProvider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	repo := implementation.NewKnowledgeRepository(gormDB)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	knowledge := service.NewKnowledgeService(brands, repo, embeddingProvider, sysLogger)

	targets := brands.Keys()
	if len(os.Args) > 1 {
		targets = []string{os.Args[1]}
	}

	ctx := context.Background()
	for _, key := range targets {
		color.Cyan("Indexing %s...", key)
		start := time.Now()

		count, err := knowledge.RebuildBrand(ctx, key)
		if err != nil {
			color.Red("✗ %s failed: %v", key, err)
			os.Exit(1)
		}

		color.Green("✓ %s: %d chunks in %s", key, count, time.Since(start).Round(time.Millisecond))
	}

	log.Println("Seeding complete")
}
