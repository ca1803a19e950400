package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/orientavoc/orientation-platform/docs"
	"github.com/orientavoc/orientation-platform/internal/api/handler"
	"github.com/orientavoc/orientation-platform/internal/api/middleware"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
	"github.com/orientavoc/orientation-platform/internal/core/service"
	"github.com/orientavoc/orientation-platform/internal/events"
	mongodb "github.com/orientavoc/orientation-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/orientavoc/orientation-platform/internal/infrastructure/db/redis"
	"github.com/orientavoc/orientation-platform/internal/infrastructure/upstream"
	"github.com/orientavoc/orientation-platform/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, bus *events.Bus, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("orientation"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	revoker := redisdb.NewTokenRevoker(rdb)
	authService := service.NewAuthService(users, sessions, revoker, cfg.JWTSecret, cfg.TokenTTL, log)

	e.Use(middleware.Auth(cfg.JWTSecret, revoker))
	e.Use(middleware.SlidingRefresh(cfg.RefreshThreshold, func(c echo.Context, sessionID string) (string, error) {
		return authService.RefreshToken(c.Request().Context(), middleware.UserFromContext(c), sessionID)
	}, log))

	upstreamClient := upstream.NewClient(cfg.UpstreamBaseURL, sessions, bus, log)

	authHandler := handler.NewAuthHandler(authService)
	navHandler := handler.NewNavigationHandler()
	catalogHandler := handler.NewCatalogHandler(upstreamClient)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)
	e.POST("/auth/register", authHandler.Register,
		middleware.PermissionGuard(middleware.GuardConfig{
			RequiredPermissions: []string{domain.PermManageUsers},
		}, audit))

	// --- Guarded route groups ---
	admin := e.Group(domain.AdminHomePath, middleware.AdminGuard(audit))
	admin.GET("/navigation", navHandler.AdminNavigation)
	admin.GET("/navigation/:id", navHandler.AdminCategory)

	student := e.Group(domain.StudentHomePath, middleware.StudentGuard(audit))
	student.GET("/navigation", navHandler.StudentNavigation)
	student.GET("/careers", catalogHandler.Careers,
		middleware.PermissionGuard(middleware.GuardConfig{
			RequiredPermissions: []string{domain.PermBrowseCareers},
		}, audit))
	student.GET("/institutions", catalogHandler.Institutions,
		middleware.PermissionGuard(middleware.GuardConfig{
			RequiredPermissions: []string{domain.PermBrowseInstitutions},
		}, audit))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
