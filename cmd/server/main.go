package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savir-sistemas/backoffice-api/internal/api"
	"github.com/savir-sistemas/backoffice-api/internal/infrastructure/config"
	mongodb "github.com/savir-sistemas/backoffice-api/internal/infrastructure/db/mongo"
	redisdb "github.com/savir-sistemas/backoffice-api/internal/infrastructure/db/redis"
	"github.com/savir-sistemas/backoffice-api/pkg/logger"
)

func main() {
	// .env is optional; real environments configure via the process env.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "backoffice-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	e := api.NewRouter(db, rdb, cfg.Redis.ActorTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewProductRepository(db).EnsureIndexes(ctx)
}
