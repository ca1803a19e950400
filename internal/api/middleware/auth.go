package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

// Context keys populated by Auth.
const (
	CtxUser      = "user"
	CtxSessionID = "session_id"
	CtxTokenID   = "token_id"
	CtxTokenExp  = "token_exp"
)

// Auth validates the bearer JWT, rejects revoked tokens, and injects the
// principal rebuilt from the claims into the request context. Missing or
// invalid tokens leave the context without a user; the guards decide what
// that means per route group.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tokenID, _ := claims["jti"].(string)
			if revoker != nil && tokenID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), tokenID)
				if err == nil && revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			user := userFromClaims(claims)
			sessionID, _ := claims["sid"].(string)

			c.Set(CtxUser, user)
			c.Set(CtxSessionID, sessionID)
			c.Set(CtxTokenID, tokenID)
			if exp, ok := claims["exp"].(float64); ok {
				c.Set(CtxTokenExp, time.Unix(int64(exp), 0))
			}

			return next(c)
		}
	}
}

// UserFromContext returns the authenticated principal, or nil for an
// anonymous request.
func UserFromContext(c echo.Context) *domain.User {
	u, _ := c.Get(CtxUser).(*domain.User)
	return u
}

// SessionIDFromContext returns the session id claim, or "".
func SessionIDFromContext(c echo.Context) string {
	sid, _ := c.Get(CtxSessionID).(string)
	return sid
}

func userFromClaims(claims jwt.MapClaims) *domain.User {
	id, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &domain.User{
		ID:          id,
		Email:       email,
		Name:        name,
		Role:        role,
		Groups:      claimStrings(claims["groups"]),
		Permissions: claimStrings(claims["permissions"]),
		Active:      true,
	}
}

func claimStrings(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
