// Command server runs the orientation-platform auth gateway.
//
// @title        Orientation Platform Auth Gateway
// @version      1.0
// @description  Session, permission and navigation gateway for the vocational-orientation platform.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orientavoc/orientation-platform/internal/api"
	"github.com/orientavoc/orientation-platform/internal/events"
	mongodb "github.com/orientavoc/orientation-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/orientavoc/orientation-platform/internal/infrastructure/db/redis"
	"github.com/orientavoc/orientation-platform/internal/infrastructure/queue"
	"github.com/orientavoc/orientation-platform/internal/pkg/config"
	"github.com/orientavoc/orientation-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// Audit trail: guard decisions flow through the sharded dispatcher into
	// Mongo, off the request path.
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, mongodb.NewAuditRepository(db), log)
	audit.Start(ctx)

	// Cross-cutting fault signals: the upstream client publishes, the fault
	// handler consumes. The redirect seam logs the forced navigation; a
	// deployment with connected clients delivers it over its push channel.
	bus := events.NewBus()
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	faults := events.NewFaultHandler(sessions, events.NewLogNotifier(log), func(path string) {
		log.Info().Str("path", path).Msg("forcing client navigation")
	}, cfg.RedirectCooldown, log)
	detach := faults.Attach(bus)
	defer detach()

	e := api.NewRouter(db, rdb, cfg, bus, audit, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth gateway listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
