package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

type mapRevoker map[string]bool

func (m mapRevoker) Revoke(_ context.Context, id string, _ time.Duration) error {
	m[id] = true
	return nil
}

func (m mapRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	return m[id], nil
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, token string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, handler(c)
}

func TestAuth_InjectsPrincipal(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":         "u1",
		"email":       "ana@example.com",
		"name":        "Ana",
		"role":        domain.RoleStudent,
		"groups":      []string{domain.GroupStudent},
		"permissions": []string{domain.PermViewResults},
		"sid":         "s1",
		"jti":         "j1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	c, err := invoke(t, Auth(testSecret, mapRevoker{}), token)
	if err != nil {
		t.Fatalf("auth middleware error: %v", err)
	}

	u := UserFromContext(c)
	if u == nil || u.ID != "u1" || u.Role != domain.RoleStudent {
		t.Fatalf("principal not injected: %+v", u)
	}
	if len(u.Permissions) != 1 || u.Permissions[0] != domain.PermViewResults {
		t.Fatalf("permissions claim not mapped: %v", u.Permissions)
	}
	if SessionIDFromContext(c) != "s1" {
		t.Fatalf("session id not injected")
	}
	if _, ok := c.Get(CtxTokenExp).(time.Time); !ok {
		t.Fatalf("token expiry not injected")
	}
}

func TestAuth_AnonymousPassesWithoutUser(t *testing.T) {
	c, err := invoke(t, Auth(testSecret, mapRevoker{}), "")
	if err != nil {
		t.Fatalf("anonymous request must pass through: %v", err)
	}
	if UserFromContext(c) != nil {
		t.Fatalf("anonymous request must not carry a user")
	}
}

func TestAuth_RejectsInvalidToken(t *testing.T) {
	_, err := invoke(t, Auth(testSecret, mapRevoker{}), "not-a-token")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err := invoke(t, Auth(testSecret, mapRevoker{}), token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestAuth_RejectsRevokedToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"jti": "j1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rev := mapRevoker{"j1": true}
	_, err := invoke(t, Auth(testSecret, rev), token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %v", err)
	}
}

func TestSlidingRefresh(t *testing.T) {
	e := echo.New()

	newCtx := func(exp time.Time) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(CtxSessionID, "s1")
		c.Set(CtxTokenExp, exp)
		return c, rec
	}

	refreshed := 0
	mw := SlidingRefresh(10*time.Minute, func(_ echo.Context, sessionID string) (string, error) {
		refreshed++
		return "fresh-token", nil
	}, zerolog.Nop())

	// Inside the threshold: header set.
	c, rec := newCtx(time.Now().Add(5 * time.Minute))
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("refresh middleware error: %v", err)
	}
	if rec.Header().Get(NewTokenHeader) != "fresh-token" {
		t.Fatalf("expected New-Token header, got %q", rec.Header().Get(NewTokenHeader))
	}
	if refreshed != 1 {
		t.Fatalf("expected one refresh, got %d", refreshed)
	}

	// Outside the threshold: untouched.
	c, rec = newCtx(time.Now().Add(2 * time.Hour))
	if err := handler(c); err != nil {
		t.Fatalf("refresh middleware error: %v", err)
	}
	if rec.Header().Get(NewTokenHeader) != "" {
		t.Fatalf("token refreshed outside threshold")
	}
}
