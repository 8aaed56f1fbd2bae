package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/deepmindconcepts/coaching-platform/internal/api"
	"github.com/deepmindconcepts/coaching-platform/internal/api/handler"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
	"github.com/deepmindconcepts/coaching-platform/internal/core/service"
	"github.com/deepmindconcepts/coaching-platform/internal/infrastructure/config"
	mongodb "github.com/deepmindconcepts/coaching-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/deepmindconcepts/coaching-platform/internal/infrastructure/db/redis"
	"github.com/deepmindconcepts/coaching-platform/internal/infrastructure/content"
	"github.com/deepmindconcepts/coaching-platform/internal/infrastructure/directory"
	"github.com/deepmindconcepts/coaching-platform/internal/infrastructure/queue"
	"github.com/deepmindconcepts/coaching-platform/pkg/logger"
)

// @title        DeepMind Concepts Coaching Platform API
// @version      1.0
// @description  Marketing, booking and authentication API for the DeepMind Concepts career-coaching platform.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Redis (session store, comment store, booking guard) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- User directory ---
	var dir ports.UserDirectory
	var health *handler.HealthDependenciesHandler
	switch cfg.DirectoryBackend {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		mongoDir := mongodb.NewUserDirectory(db)
		if err := mongoDir.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		dir = mongoDir
		health = handler.NewHealthDependenciesHandler(db, rdb)
	default:
		dir = directory.NewMemory()
		health = handler.NewHealthDependenciesHandler(nil, rdb)
	}

	if cfg.SeedDemoAccounts {
		if err := directory.SeedDemoAccounts(ctx, dir); err != nil {
			log.Fatal().Err(err).Msg("demo account seeding failed")
		}
		log.Info().Msg("demo accounts seeded")
	}

	// --- Core services ---
	sessions := service.NewSessionManager(dir, redisdb.NewSessionStore(rdb), cfg.SessionKeyPrefix, log)
	catalog := content.NewCatalog()

	notifier := service.NewLogNotificationService(log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notifier, log)
	dispatcher.Start(ctx)

	bookings := service.NewBookingService(catalog, redisdb.NewBookingGuard(rdb), dispatcher, log)
	comments := service.NewCommentService(catalog, redisdb.NewCommentStore(rdb), log)
	contact := service.NewContactService(dispatcher, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Sessions:  sessions,
		Directory: dir,
		Catalog:   catalog,
		Bookings:  bookings,
		Comments:  comments,
		Contact:   contact,
		Health:    health,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("directory", cfg.DirectoryBackend).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
