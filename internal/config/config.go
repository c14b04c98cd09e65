package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port             string `env:"PORT" envDefault:"8080"`
	DBUrl            string `env:"DB_URL"`
	AppEnv           string `env:"APP_ENV" envDefault:"production"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	SeedDemoData     bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return parse()
}

func parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.AppEnv = normalizeEnv(cfg.AppEnv)
	cfg.DBUrl = strings.TrimSpace(cfg.DBUrl)
	return &cfg, nil
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

// UsesDatabase reports whether the snapshot should be read from Postgres
// instead of the built-in demo seed.
func (c *Config) UsesDatabase() bool {
	return c != nil && c.DBUrl != ""
}
