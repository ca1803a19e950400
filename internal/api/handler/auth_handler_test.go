package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/api/middleware"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

type stubAuthService struct {
	session    *ports.Session
	loginErr   error
	restored   *domain.User
	restoreErr error
	loggedOut  []string
}

func (s *stubAuthService) Register(_ context.Context, email, _, name, role string, groups, permissions []string) (*domain.User, error) {
	return &domain.User{ID: "new", Email: email, Name: name, Role: role, Groups: groups, Permissions: permissions, Active: true}, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.Session, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.session, nil
}

func (s *stubAuthService) Logout(_ context.Context, sessionID, _ string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

func (s *stubAuthService) Restore(context.Context, string) (*domain.User, error) {
	if s.restoreErr != nil {
		return nil, s.restoreErr
	}
	return s.restored, nil
}

func newHandlerContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler_Success(t *testing.T) {
	svc := &stubAuthService{session: &ports.Session{
		ID:    "s1",
		Token: "tok",
		User:  &domain.User{ID: "u1", Email: "ana@example.com", Active: true},
	}}
	h := NewAuthHandler(svc)

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok"`) {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestLoginHandler_RejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"x"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %v", err)
	}
}

func TestLoginHandler_MasksUnknownAccount(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrUserNotFound})

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected masked ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutHandler(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.CtxUser, &domain.User{ID: "u1"})
	c.Set(middleware.CtxSessionID, "s1")
	c.Set(middleware.CtxTokenID, "j1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "s1" {
		t.Fatalf("logout not delegated: %v", svc.loggedOut)
	}
}

func TestMeHandler_RequiresSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newHandlerContext(t, http.MethodGet, "/auth/me", "")
	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %v", err)
	}
}

func TestMeHandler_ReturnsAuthoritativeUser(t *testing.T) {
	svc := &stubAuthService{restored: &domain.User{ID: "u1", Name: "Ana", Active: true}}
	h := NewAuthHandler(svc)

	c, rec := newHandlerContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.CtxUser, &domain.User{ID: "u1"})
	c.Set(middleware.CtxSessionID, "s1")

	if err := h.Me(c); err != nil {
		t.Fatalf("me handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"Ana"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_ExpiredSession(t *testing.T) {
	svc := &stubAuthService{restoreErr: domain.ErrSessionExpired}
	h := NewAuthHandler(svc)

	c, _ := newHandlerContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.CtxUser, &domain.User{ID: "u1"})
	c.Set(middleware.CtxSessionID, "s1")

	if err := h.Me(c); err != domain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}
