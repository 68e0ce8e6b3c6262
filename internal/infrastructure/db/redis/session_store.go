package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/connectpro/marketplace-api/internal/api/metrics"
	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// SessionStore keeps the two typed session slots per client context in
// Redis. Key format: <slot>:<context_id>, e.g. admin_session:ctx-abc123.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) key(contextID string, slot domain.Slot) string {
	return fmt.Sprintf("%s:%s", slot, contextID)
}

// Get reads one slot. Returns (nil, nil) when the slot is empty. A value
// that no longer decodes is deleted on the spot and reported as
// domain.ErrCorruptedSession so the caller fails closed, not open.
func (s *SessionStore) Get(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error) {
	val, err := s.client.Get(ctx, s.key(contextID, slot)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		if delErr := s.client.Del(ctx, s.key(contextID, slot)).Err(); delErr != nil {
			return nil, fmt.Errorf("session delete corrupted: %w", delErr)
		}
		metrics.SessionsInvalidatedTotal.WithLabelValues("corrupt").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptedSession, err)
	}
	return &session, nil
}

// Put writes the session into the slot derived from its role, overwriting
// whatever occupied it. The Redis TTL mirrors the session expiry.
func (s *SessionStore) Put(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session put: expires_at must be in the future")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	if err := s.client.Set(ctx, s.key(session.ContextID, session.Slot()), data, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, contextID string, slot domain.Slot) error {
	if err := s.client.Del(ctx, s.key(contextID, slot)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

// Clear removes both slots in a single call.
func (s *SessionStore) Clear(ctx context.Context, contextID string) error {
	keys := []string{
		s.key(contextID, domain.AdminSlot),
		s.key(contextID, domain.PrincipalSlot),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
