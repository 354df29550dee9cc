package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"support-chat-be/internal/constant"
	"support-chat-be/internal/dto"
	"support-chat-be/internal/repository/memory"
	"support-chat-be/pkg/llm"
	"support-chat-be/pkg/rag"

	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	reply   string
	err     error
	healthy bool
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Health(ctx context.Context) bool { return s.healthy }

type stubRetriever struct{}

func (stubRetriever) Search(ctx context.Context, brand, query string, topK int) ([]rag.Snippet, error) {
	return nil, nil
}

func newTestChatService(provider llm.LLMProvider) (IChatService, *memory.ConversationStore) {
	store := memory.NewConversationStore(constant.SessionIdleTTL)
	svc := NewChatService(testBrands(), provider, "phi3:mini", stubRetriever{}, store)
	return svc, store
}

func TestSendChatMintsSessionID(t *testing.T) {
	svc, _ := newTestChatService(&stubLLM{reply: "Hello!"})

	res, err := svc.SendChat(context.Background(), "ticket99", &dto.ChatRequest{Message: "hi"})
	assert.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.SessionID, "ticket99_"), "session id %q lacks brand prefix", res.SessionID)
	assert.Equal(t, "model", res.Source)
}

func TestSendChatPersistsBothTurns(t *testing.T) {
	svc, store := newTestChatService(&stubLLM{reply: "Reply text"})

	res, err := svc.SendChat(context.Background(), "ticket99",
		&dto.ChatRequest{Message: "my question", SessionID: "ticket99_fixed"})
	assert.NoError(t, err)
	assert.Equal(t, "ticket99_fixed", res.SessionID)

	history := store.Recent("ticket99_fixed", 10)
	assert.Len(t, history, 2)
	assert.Equal(t, constant.ChatRoleUser, history[0].Role)
	assert.Equal(t, "my question", history[0].Content)
	assert.Equal(t, constant.ChatRoleAssistant, history[1].Role)
	assert.Equal(t, "Reply text", history[1].Content)
}

func TestSendChatFallsBackWhenModelDown(t *testing.T) {
	svc, store := newTestChatService(&stubLLM{err: errors.New("connection refused")})

	res, err := svc.SendChat(context.Background(), "eventitans",
		&dto.ChatRequest{Message: "hello", SessionID: "eventitans_s1"})
	assert.NoError(t, err)

	assert.Equal(t, "fallback", res.Source)
	assert.Contains(t, res.Message, "Eventitans")

	// The fallback reply still lands in history
	history := store.Recent("eventitans_s1", 10)
	assert.Len(t, history, 2)
	assert.Equal(t, res.Message, history[1].Content)
}

func TestSendChatUnknownBrand(t *testing.T) {
	svc, _ := newTestChatService(&stubLLM{reply: "x"})

	_, err := svc.SendChat(context.Background(), "nosuchbrand", &dto.ChatRequest{Message: "hi"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown brand")
}

func TestClearSessionService(t *testing.T) {
	svc, store := newTestChatService(&stubLLM{reply: "x"})

	store.Append("ticket99_s1", constant.ChatRoleUser, "hello")

	res, err := svc.ClearSession(context.Background(), &dto.ClearSessionRequest{SessionID: "ticket99_s1"})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, store.Recent("ticket99_s1", 10))
}

func TestHealthReportsModelState(t *testing.T) {
	svcUp, _ := newTestChatService(&stubLLM{healthy: true})
	svcDown, _ := newTestChatService(&stubLLM{healthy: false})

	up := svcUp.Health(context.Background())
	assert.Equal(t, "ok", up.Status)
	assert.Equal(t, "up", up.Ollama)
	assert.Equal(t, "phi3:mini", up.Model)
	assert.Len(t, up.Brands, 2)

	down := svcDown.Health(context.Background())
	assert.Equal(t, "down", down.Ollama)
}
