// Package redis implements the conversation store on a Redis list per
// session. Expiry is delegated to Redis key TTLs, so sweeping is a no-op
// here; the server reaps idle sessions on its own.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-chat-be/internal/repository/contract"
	"support-chat-be/pkg/llm"

	"github.com/redis/go-redis/v9"
)

type storedMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.ConversationStore = &ConversationStore{}

func NewConversationStore(client *redis.Client, ttl time.Duration) *ConversationStore {
	return &ConversationStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:session:%s:messages", sessionID)
}

func (s *ConversationStore) GetOrCreate(sessionID string) {
	ctx := context.Background()
	// Only refresh the window when the session already holds messages;
	// an empty list key does not exist in Redis.
	s.client.Expire(ctx, sessionKey(sessionID), s.ttl)
}

func (s *ConversationStore) Append(sessionID, role, content string) {
	ctx := context.Background()
	payload, err := json.Marshal(storedMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}

	key := sessionKey(sessionID)
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.ttl)
	_, _ = pipe.Exec(ctx)
}

func (s *ConversationStore) Recent(sessionID string, maxN int) []llm.Message {
	ctx := context.Background()

	start := int64(0)
	if maxN > 0 {
		start = int64(-maxN)
	}
	raw, err := s.client.LRange(ctx, sessionKey(sessionID), start, -1).Result()
	if err != nil {
		return []llm.Message{}
	}

	out := make([]llm.Message, 0, len(raw))
	for _, item := range raw {
		var m storedMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func (s *ConversationStore) Clear(sessionID string) {
	s.client.Del(context.Background(), sessionKey(sessionID))
}

// SweepExpired always reports zero: Redis evicts expired session keys
// server-side.
func (s *ConversationStore) SweepExpired() int {
	return 0
}
