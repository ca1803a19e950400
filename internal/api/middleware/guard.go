package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/api/metrics"
	"github.com/orientavoc/orientation-platform/internal/core/authz"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/navigation"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

// GuardConfig turns the generic Guard into a concrete route guard. The
// permission and group requirements evaluate independently and both must
// pass; an omitted requirement passes vacuously. Deny renders the denial as
// a redirect or an inline fallback body, never as an error.
type GuardConfig struct {
	Name                  string
	RequiredPermissions   []string
	RequireAllPermissions bool
	RequiredGroups        []string
	Deny                  func(c echo.Context, u *domain.User) error
}

// Guard evaluates the session against the config on every request. Denial is
// a normal response branch: guards never return an error for a failed check.
// Decisions are recorded asynchronously when an audit recorder is supplied.
func Guard(cfg GuardConfig, audit ports.AuditRecorder) echo.MiddlewareFunc {
	deny := cfg.Deny
	if deny == nil {
		deny = denyFallback
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := UserFromContext(c)

			permsOK := authz.HasAnyPermission(u, cfg.RequiredPermissions)
			if cfg.RequireAllPermissions {
				permsOK = authz.HasAllPermissions(u, cfg.RequiredPermissions)
			}
			groupsOK := authz.HasAnyGroup(u, cfg.RequiredGroups)
			granted := permsOK && groupsOK

			record(audit, c, u, cfg.Name, granted)
			outcome := "denied"
			if granted {
				outcome = "granted"
			}
			metrics.GuardDecisionsTotal.WithLabelValues(cfg.Name, outcome).Inc()

			if !granted {
				return deny(c, u)
			}
			return next(c)
		}
	}
}

// StudentGuard requires a session and nothing more; fine-grained filtering
// happens inside the student pages. Anonymous requests are redirected to
// login.
func StudentGuard(audit ports.AuditRecorder) echo.MiddlewareFunc {
	return Guard(GuardConfig{
		Name: "student",
		Deny: func(c echo.Context, _ *domain.User) error {
			return c.Redirect(http.StatusFound, domain.LoginPath)
		},
	}, audit)
}

// AdminGuard grants access on any permission from the admin navigation
// catalog. The denied redirect target depends on the user's groups: the
// student home when the groups contain "Estudiante", the institution home on
// an institution-style group, the student home otherwise.
func AdminGuard(audit ports.AuditRecorder) echo.MiddlewareFunc {
	return Guard(GuardConfig{
		Name:                "admin",
		RequiredPermissions: navigation.AdminPermissions(),
		Deny: func(c echo.Context, u *domain.User) error {
			if u == nil {
				return c.Redirect(http.StatusFound, domain.LoginPath)
			}
			target := domain.StudentHomePath
			if !authz.HasGroup(u, domain.GroupStudent) && authz.InInstitutionGroup(u) {
				target = domain.InstitutionHomePath
			}
			return c.Redirect(http.StatusFound, target)
		},
	}, audit)
}

// PermissionGuard is the configurable variant: callers state the permission
// and group requirements and optionally override the fallback response.
func PermissionGuard(cfg GuardConfig, audit ports.AuditRecorder) echo.MiddlewareFunc {
	cfg.Name = "permission"
	return Guard(cfg, audit)
}

func denyFallback(c echo.Context, _ *domain.User) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"error": "no tenés permisos para acceder a esta sección",
	})
}

func record(audit ports.AuditRecorder, c echo.Context, u *domain.User, guard string, granted bool) {
	if audit == nil {
		return
	}
	entry := ports.AuditEntry{
		ID:        uuid.NewString(),
		SessionID: SessionIDFromContext(c),
		Guard:     guard,
		Route:     c.Request().URL.Path,
		Granted:   granted,
		At:        time.Now().UTC(),
	}
	if u != nil {
		entry.UserID = u.ID
	}
	if !granted {
		entry.Reason = "requirements not met"
		if u == nil {
			entry.Reason = "no session"
		}
	}
	audit.Record(entry)
}
