package ports

import (
	"context"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

// SessionStore persists the two durable session artifacts per session id:
// the bearer token and the serialized user record. Writes always overwrite
// the whole value; Clear removes both keys.
//
// UserBlob returns the raw serialized record rather than a decoded user so
// the restore path can run the field-name normalization in one place
// regardless of which backend naming convention produced the blob.
type SessionStore interface {
	SaveToken(ctx context.Context, sessionID, token string) error
	Token(ctx context.Context, sessionID string) (string, error)
	SaveUser(ctx context.Context, sessionID string, user *domain.User) error
	UserBlob(ctx context.Context, sessionID string) ([]byte, error)
	Clear(ctx context.Context, sessionID string) error
}
