package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment. Everything optional defaults
// to the single-process demo setup: in-memory stores, no broker.
type Config struct {
	Port         string  `envconfig:"PORT" default:"8080"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS" default:"http://localhost:5173"`
	JWTSecret    string  `envconfig:"JWT_SECRET" default:"petbhai-dev-secret"`
	MongoURI     string  `envconfig:"MONGO_URI" default:""`
	MongoDB      string  `envconfig:"MONGO_DB" default:"petbhai"`
	RedisAddr    string  `envconfig:"REDIS_ADDR" default:""`
	NATSURL      string  `envconfig:"NATS_URL" default:""`
	RateLimitRPS float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateBurst    int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.MongoURI != "" && c.MongoDB == "" {
		return fmt.Errorf("MONGO_DB is required when MONGO_URI is set")
	}
	if c.RateLimitRPS <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}
