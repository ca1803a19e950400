package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/api/middleware"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

// ctxSession extracts the principal and session id injected by the Auth
// middleware. Handlers registered behind a guard may assume both are
// present; calling this outside a session-providing route group is a wiring
// bug and fails as 401 rather than panicking.
func ctxSession(c echo.Context) (*domain.User, string, error) {
	u := middleware.UserFromContext(c)
	if u == nil {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	sessionID := middleware.SessionIDFromContext(c)
	if sessionID == "" {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "token missing session identity")
	}

	return u, sessionID, nil
}
