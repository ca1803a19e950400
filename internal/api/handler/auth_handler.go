package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/api/metrics"
	"github.com/orientavoc/orientation-platform/internal/api/middleware"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Name        string   `json:"name" validate:"required"`
	Role        string   `json:"role" validate:"required,oneof=admin student institution guest"`
	Groups      []string `json:"groups"`
	Permissions []string `json:"permissions"`
}

type authResponse struct {
	Token     string       `json:"token,omitempty"`
	SessionID string       `json:"session_id,omitempty"`
	User      *domain.User `json:"user,omitempty"`
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// A missing account and a bad password are indistinguishable to the
		// caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Token:     sess.Token,
		SessionID: sess.ID,
		User:      sess.User,
	})
}

// Logout tears down the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session closed"
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	tokenID, _ := c.Get(middleware.CtxTokenID).(string)
	if err := h.authService.Logout(c.Request().Context(), sessionID, tokenID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me restores the current session, returning the authoritative user record.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	_, sessionID, err := ctxSession(c)
	if err != nil {
		metrics.SessionRestoresTotal.WithLabelValues("none").Inc()
		return err
	}

	user, err := h.authService.Restore(c.Request().Context(), sessionID)
	if err != nil {
		metrics.SessionRestoresTotal.WithLabelValues(restoreLabel(err)).Inc()
		return err
	}

	metrics.SessionRestoresTotal.WithLabelValues("verified").Inc()
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Register creates an account. The route sits behind a MANAGE_USERS guard.
//
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name, req.Role, req.Groups, req.Permissions)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

func restoreLabel(err error) string {
	if errors.Is(err, domain.ErrNoSession) {
		return "none"
	}
	return "expired"
}
