package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/savir-sistemas/backoffice-api/internal/infrastructure/config"
	mongodb "github.com/savir-sistemas/backoffice-api/internal/infrastructure/db/mongo"
	"github.com/savir-sistemas/backoffice-api/internal/seed"
	"github.com/savir-sistemas/backoffice-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "backoffice-seed",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := seed.Run(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("seed complete")
}
