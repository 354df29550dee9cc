package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-chat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestChatSendsExpectedPayload(t *testing.T) {
	var captured ollamaChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)

		json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:   captured.Model,
			Message: ollamaMessage{Role: "assistant", Content: "Hi there!"},
			Done:    true,
		})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "phi3:mini")

	reply, err := provider.Chat(context.Background(),
		[]llm.Message{
			{Role: "system", Content: "You are helpful."},
			{Role: "user", Content: "hello"},
		},
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(256),
	)

	assert.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)

	assert.Equal(t, "phi3:mini", captured.Model)
	assert.False(t, captured.Stream)
	assert.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, 0.3, captured.Options.Temperature)
	assert.Equal(t, 256, captured.Options.NumPredict)
}

func TestChatMapsModelRoleToAssistant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollamaChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "assistant", req.Messages[0].Role)

		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "ok"}})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "phi3:mini")
	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "model", Content: "prior turn"}})
	assert.NoError(t, err)
}

func TestChatServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "missing:model")
	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestChatUnreachableHost(t *testing.T) {
	provider := NewOllamaProvider("http://127.0.0.1:1", "phi3:mini")
	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "phi3:mini")
	assert.True(t, provider.Health(context.Background()))

	server.Close()
	assert.False(t, provider.Health(context.Background()))
}
