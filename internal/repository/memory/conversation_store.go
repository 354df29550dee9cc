// Package memory implements the conversation store on an in-process
// go-cache with idle-TTL expiry. The janitor is disabled: expired
// sessions linger until a sweep (or a read, which treats them as absent),
// matching the lazy-expiry contract.
package memory

import (
	"sync"
	"time"

	"support-chat-be/internal/repository/contract"
	"support-chat-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

// ChatMessage is one stored turn. Timestamps are kept for inspection but
// stripped for prompt use.
type ChatMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// Conversation guards its own message log so concurrent appends to the
// same session are atomic.
type Conversation struct {
	mu         sync.Mutex
	Messages   []ChatMessage
	CreatedAt  time.Time
	LastActive time.Time
}

type ConversationStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

var _ contract.ConversationStore = &ConversationStore{}

// NewConversationStore creates a store whose sessions expire after the
// given idle TTL. Cleanup interval 0 disables the background janitor;
// SweepExpired is the only reaper.
func NewConversationStore(ttl time.Duration) *ConversationStore {
	return &ConversationStore{
		cache: cache.New(ttl, 0),
		ttl:   ttl,
	}
}

func (s *ConversationStore) GetOrCreate(sessionID string) {
	s.fetch(sessionID)
}

func (s *ConversationStore) Append(sessionID, role, content string) {
	conv := s.fetch(sessionID)

	now := time.Now()
	conv.mu.Lock()
	conv.Messages = append(conv.Messages, ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	conv.LastActive = now
	conv.mu.Unlock()
}

func (s *ConversationStore) Recent(sessionID string, maxN int) []llm.Message {
	x, found := s.cache.Get(sessionID)
	if !found {
		return []llm.Message{}
	}
	conv := x.(*Conversation)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	start := 0
	if maxN > 0 && len(conv.Messages) > maxN {
		start = len(conv.Messages) - maxN
	}

	out := make([]llm.Message, 0, len(conv.Messages)-start)
	for _, m := range conv.Messages[start:] {
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func (s *ConversationStore) Clear(sessionID string) {
	s.cache.Delete(sessionID)
}

func (s *ConversationStore) SweepExpired() int {
	before := s.cache.ItemCount()
	s.cache.DeleteExpired()
	removed := before - s.cache.ItemCount()
	if removed < 0 {
		return 0
	}
	return removed
}

// fetch returns the live conversation for a session, creating it if
// absent, and refreshes the idle TTL. It only returns a conversation the
// cache actually holds, so a lost create race never strands an append.
func (s *ConversationStore) fetch(sessionID string) *Conversation {
	for {
		if x, found := s.cache.Get(sessionID); found {
			conv := x.(*Conversation)
			// Touch: re-set to push the expiry window forward
			s.cache.SetDefault(sessionID, conv)
			return conv
		}

		now := time.Now()
		conv := &Conversation{CreatedAt: now, LastActive: now}
		if err := s.cache.Add(sessionID, conv, cache.DefaultExpiration); err == nil {
			return conv
		}
		// Lost a create race; retry against the winner's entry
	}
}
