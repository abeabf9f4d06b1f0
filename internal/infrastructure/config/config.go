package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=savir_sistemas"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB,   default=0"`
	ActorTTL time.Duration `env:"ACTOR_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Development reports whether the process runs with the development profile
// (pretty console logs instead of JSON).
func (c *Config) Development() bool {
	return c.Env == "development"
}
