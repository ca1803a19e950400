package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker marks JWT ids as revoked until their natural expiry.
// Key format: revoked:<jti>
type TokenRevoker struct {
	client *redis.Client
}

func NewTokenRevoker(client *redis.Client) *TokenRevoker {
	return &TokenRevoker{client: client}
}

// Revoke records the token id; the mark expires with the token itself.
func (r *TokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked.
func (r *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *TokenRevoker) key(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}
