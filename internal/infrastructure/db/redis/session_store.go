package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps the two durable artifacts of a session under
// session:<id>:token and session:<id>:user. Values are always written whole;
// Clear removes both keys in one round trip.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) SaveToken(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, s.tokenKey(sessionID), token, s.ttl).Err()
}

func (s *SessionStore) Token(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, s.tokenKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("get session token: %w", err)
	}
	return val, nil
}

func (s *SessionStore) SaveUser(ctx context.Context, sessionID string, user *domain.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	return s.client.Set(ctx, s.userKey(sessionID), blob, s.ttl).Err()
}

func (s *SessionStore) UserBlob(ctx context.Context, sessionID string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.userKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("get session user: %w", err)
	}
	return val, nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.tokenKey(sessionID), s.userKey(sessionID)).Err()
}

func (s *SessionStore) tokenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:token", sessionID)
}

func (s *SessionStore) userKey(sessionID string) string {
	return fmt.Sprintf("session:%s:user", sessionID)
}
