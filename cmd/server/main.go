package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitapply/job-board/internal/api"
	"github.com/fitapply/job-board/internal/infrastructure/config"
	mongodb "github.com/fitapply/job-board/internal/infrastructure/db/mongo"
	redisdb "github.com/fitapply/job-board/internal/infrastructure/db/redis"
	"github.com/fitapply/job-board/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store is a hard dependency: refuse to start without it.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		StatsTTL:      cfg.Redis.StatsTTL,
		AdminEmails:   cfg.AdminEmails,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// ensureIndexes creates the indexes the invariants depend on: unique email
// on accounts, unique (account_id, job_id) on applications, and the text
// index backing catalog search.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewApplicationRepository(db).EnsureIndexes(ctx)
}
