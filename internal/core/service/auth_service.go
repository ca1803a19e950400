package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

var validRoles = map[string]struct{}{
	domain.RoleAdmin:       {},
	domain.RoleStudent:     {},
	domain.RoleInstitution: {},
	domain.RoleGuest:       {},
}

// AuthService implements login, logout and the two-phase session restore.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password, name, role string, groups, permissions []string) (*domain.User, error) {
	if email == "" || password == "" || role == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, ok := validRoles[role]; !ok {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		Groups:       groups,
		Permissions:  permissions,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

// Login verifies credentials, opens a session and persists both session
// artifacts (token and serialized user) before returning.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, err := s.generateToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveToken(ctx, sessionID, token); err != nil {
		return nil, err
	}
	if err := s.sessions.SaveUser(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("session_id", sessionID).Msg("session opened")
	return &ports.Session{ID: sessionID, Token: token, User: user.Clone()}, nil
}

// Logout tears the session down completely: both storage keys are removed
// and the token id is revoked for the token's remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, sessionID, tokenID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return err
	}
	if tokenID != "" {
		if err := s.revoker.Revoke(ctx, tokenID, s.tokenTTL); err != nil {
			s.log.Warn().Err(err).Str("token_id", tokenID).Msg("token revocation failed")
		}
	}
	s.log.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

// Restore implements the optimistic-then-verified restore. The persisted
// blob gives a candidate user without any repository round trip; the
// repository then provides the authoritative record, which overwrites the
// blob. Any failure along the verification path clears the whole session.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (*domain.User, error) {
	token, err := s.sessions.Token(ctx, sessionID)
	if err != nil || token == "" {
		return nil, domain.ErrNoSession
	}

	blob, err := s.sessions.UserBlob(ctx, sessionID)
	if err != nil {
		return nil, s.expire(ctx, sessionID)
	}

	candidate, err := NormalizeUser(blob)
	if err != nil || candidate.ID == "" {
		return nil, s.expire(ctx, sessionID)
	}

	authoritative, err := s.users.FindByID(ctx, candidate.ID)
	if err != nil || !authoritative.Active {
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Err(err).Str("session_id", sessionID).Msg("session verification failed")
		}
		return nil, s.expire(ctx, sessionID)
	}

	if err := s.sessions.SaveUser(ctx, sessionID, authoritative); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to refresh persisted user")
	}
	return authoritative.Clone(), nil
}

// RefreshToken mints a replacement token for a live session and persists it,
// matching the New-Token response-header contract clients rely on.
func (s *AuthService) RefreshToken(ctx context.Context, user *domain.User, sessionID string) (string, error) {
	if user == nil || sessionID == "" {
		return "", domain.ErrNoSession
	}
	token, err := s.generateToken(user, sessionID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.SaveToken(ctx, sessionID, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) expire(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("session clear failed")
	}
	return domain.ErrSessionExpired
}

func (s *AuthService) generateToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":         user.ID,
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"groups":      user.Groups,
		"permissions": user.Permissions,
		"sid":         sessionID,
		"jti":         uuid.NewString(),
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
		"iat":         time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
