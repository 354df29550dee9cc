package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"support-chat-be/internal/constant"
	"support-chat-be/internal/dto"
	"support-chat-be/internal/repository/contract"
	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/llm"
	"support-chat-be/pkg/rag"
	"support-chat-be/pkg/rag/response"

	"github.com/google/uuid"
)

// IChatService defines the chat service interface
type IChatService interface {
	SendChat(ctx context.Context, brandKey string, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ClearSession(ctx context.Context, request *dto.ClearSessionRequest) (*dto.ClearSessionResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
}

type chatService struct {
	brands      *brand.Registry
	llmProvider llm.LLMProvider
	llmModel    string
	store       contract.ConversationStore
	generator   *response.Generator
	llmLogger   *log.Logger
}

func NewChatService(
	brands *brand.Registry,
	llmProvider llm.LLMProvider,
	llmModel string,
	retriever rag.Retriever,
	store contract.ConversationStore,
) IChatService {
	llmLogger := initLLMLogger()

	return &chatService{
		brands:      brands,
		llmProvider: llmProvider,
		llmModel:    llmModel,
		store:       store,
		generator:   response.NewGenerator(llmProvider, retriever, store, llmLogger),
		llmLogger:   llmLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// SendChat runs one turn of the conversation for a brand. The session id
// is client-supplied or minted here; either way it comes back in the
// response so the widget can stick to it.
func (cs *chatService) SendChat(ctx context.Context, brandKey string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	profile, err := cs.brands.Get(brandKey)
	if err != nil {
		return nil, err
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("%s_%s", profile.Key, uuid.New().String())
	}

	cs.store.GetOrCreate(sessionID)
	cs.store.Append(sessionID, constant.ChatRoleUser, request.Message)

	result, err := cs.generator.Generate(ctx, profile, request.Message, sessionID)
	if err != nil {
		// Cancelled mid-generation; the user turn stays, no reply is stored
		return nil, err
	}

	cs.store.Append(sessionID, constant.ChatRoleAssistant, result.Reply)

	resp := &dto.ChatResponse{
		Success:   true,
		Message:   result.Reply,
		SessionID: sessionID,
		Brand:     profile.Key,
		Intent:    result.Intent,
		Source:    result.Source,
	}
	if result.Directive != nil && result.Directive.Kind == response.DirectiveLeadForm {
		resp.ShowForm = result.Directive.Form
	}
	return resp, nil
}

func (cs *chatService) ClearSession(ctx context.Context, request *dto.ClearSessionRequest) (*dto.ClearSessionResponse, error) {
	cs.store.Clear(request.SessionID)
	return &dto.ClearSessionResponse{
		Success:   true,
		SessionID: request.SessionID,
	}, nil
}

// Health reports liveness, probes the model endpoint and opportunistically
// sweeps idle-expired sessions.
func (cs *chatService) Health(ctx context.Context) *dto.HealthResponse {
	ollamaStatus := "down"
	if cs.llmProvider.Health(ctx) {
		ollamaStatus = "up"
	}

	swept := cs.store.SweepExpired()
	if swept > 0 {
		cs.llmLogger.Printf("[SESSIONS] swept %d expired session(s)", swept)
	}

	return &dto.HealthResponse{
		Status:        "ok",
		Ollama:        ollamaStatus,
		Model:         cs.llmModel,
		Brands:        cs.brands.Keys(),
		SessionsSwept: swept,
		Timestamp:     time.Now().UTC(),
	}
}
