package bootstrap

import (
	"context"
	"log"

	"support-chat-be/internal/config"
	"support-chat-be/internal/constant"
	"support-chat-be/internal/controller"
	"support-chat-be/internal/pkg/logger"
	"support-chat-be/internal/pkg/mailer"
	"support-chat-be/internal/repository/contract"
	"support-chat-be/internal/repository/implementation"
	"support-chat-be/internal/repository/memory"
	redisstore "support-chat-be/internal/repository/redis"
	"support-chat-be/internal/service"
	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/embedding"
	llmollama "support-chat-be/pkg/llm/ollama"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	LeadController    controller.ILeadController
	WebhookController controller.IWebhookController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	KnowledgeService service.IKnowledgeService

	Brands *brand.Registry
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	brands := brand.NewRegistry(cfg.App.PromptsDir, cfg.App.KnowledgeDir)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)

	llmProvider := llmollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)
	log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.LLMModel)

	// 4. Session Storage
	var conversationStore contract.ConversationStore
	if cfg.Chat.SessionBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		conversationStore = redisstore.NewConversationStore(rdb, constant.SessionIdleTTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		conversationStore = memory.NewConversationStore(constant.SessionIdleTTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 5. Repositories
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	leadRepo := implementation.NewLeadRepository(db)

	// 6. Services
	knowledgeService := service.NewKnowledgeService(brands, knowledgeRepo, embeddingProvider, sysLogger)

	chatService := service.NewChatService(
		brands,
		llmProvider,
		cfg.Ai.LLMModel,
		knowledgeService,
		conversationStore,
	)

	leadService := service.NewLeadService(brands, leadRepo, pubSub, cfg.App.LeadTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.LeadTopic, brands, leadRepo, emailService)

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		LeadController:    controller.NewLeadController(leadService),
		WebhookController: controller.NewWebhookController(cfg.App.WhatsAppToken, sysLogger),
		HealthController:  controller.NewHealthController(chatService),

		ConsumerService:  consumerService,
		KnowledgeService: knowledgeService,

		Brands: brands,
	}
}
