package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists per-conversation dialog state between webhook calls
type Store interface {
	Get(ctx context.Context, conversationID string) (*State, error)
	Put(ctx context.Context, state *State) error
	Delete(ctx context.Context, conversationID string) error
}

// RedisStore keeps dialog state as JSON under dialog:{conversation_id} with a TTL,
// so abandoned conversations expire instead of parking forever.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed dialog store
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(conversationID string) string {
	return "dialog:" + conversationID
}

// Get loads the dialog state of a conversation, nil when none is active
func (s *RedisStore) Get(ctx context.Context, conversationID string) (*State, error) {
	raw, err := s.client.Get(ctx, s.key(conversationID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dialog state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode dialog state: %w", err)
	}
	return &state, nil
}

// Put stores the dialog state, refreshing its TTL
func (s *RedisStore) Put(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now()
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode dialog state: %w", err)
	}
	if err := s.client.Set(ctx, s.key(state.ConversationID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store dialog state: %w", err)
	}
	return nil
}

// Delete destroys the dialog state of a conversation
func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, s.key(conversationID)).Err()
}

// MemoryStore is the in-process fallback used when Redis is not configured.
// State does not survive restarts, matching the transient nature of dialogs.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*State
}

// NewMemoryStore creates an in-process dialog store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]*State)}
}

// Get loads the dialog state of a conversation, nil when none is active
func (s *MemoryStore) Get(ctx context.Context, conversationID string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[conversationID]
	if !ok {
		return nil, nil
	}
	clone := *state
	return &clone, nil
}

// Put stores the dialog state
func (s *MemoryStore) Put(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now()
	clone := *state
	s.mu.Lock()
	s.states[state.ConversationID] = &clone
	s.mu.Unlock()
	return nil
}

// Delete destroys the dialog state of a conversation
func (s *MemoryStore) Delete(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	delete(s.states, conversationID)
	s.mu.Unlock()
	return nil
}
