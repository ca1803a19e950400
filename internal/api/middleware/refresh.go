package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orientavoc/orientation-platform/internal/api/metrics"
)

// NewTokenHeader carries a transparently refreshed bearer token. Clients
// persist it and replace their stored token without re-authenticating.
const NewTokenHeader = "New-Token"

// RefreshFunc mints and persists a replacement token for a live session.
type RefreshFunc func(c echo.Context, sessionID string) (string, error)

// SlidingRefresh emits a New-Token response header when the presented token
// is inside the refresh threshold. Refresh failures are logged, never
// surfaced: the request itself already succeeded on a valid token.
func SlidingRefresh(threshold time.Duration, refresh RefreshFunc, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			exp, ok := c.Get(CtxTokenExp).(time.Time)
			sessionID := SessionIDFromContext(c)
			if !ok || sessionID == "" || time.Until(exp) > threshold {
				return next(c)
			}

			token, err := refresh(c, sessionID)
			if err != nil {
				log.Warn().Err(err).Str("session_id", sessionID).Msg("token refresh failed")
				return next(c)
			}

			c.Response().Header().Set(NewTokenHeader, token)
			metrics.TokensRefreshedTotal.Inc()
			return next(c)
		}
	}
}
