package ports

import (
	"context"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

// Session bundles what a successful login produces.
type Session struct {
	ID    string
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, email, password, name, role string, groups, permissions []string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, sessionID, tokenID string) error
	// Restore performs the two-phase session restore: optimistic decode of
	// the persisted user blob, then authoritative verification against the
	// repository. On verification failure the session is fully cleared.
	Restore(ctx context.Context, sessionID string) (*domain.User, error)
}
