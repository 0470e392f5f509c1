package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env             string        `env:"ENV" env-default:"local"`
	DBPath          string        `env:"DB_PATH" env-default:"./printquote.db"`
	Port            string        `env:"PORT" env-default:"8080"`
	CORSOrigins     string        `env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	SeedCatalogPath string        `env:"SEED_CATALOG"`
}

// Load reads environment variables and returns a populated Config.
func Load() (Config, error) {
	return load(".env")
}

func load(dotenvPath string) (Config, error) {
	// Best-effort: a missing .env is fine, real env vars are never overwritten.
	_ = godotenv.Load(dotenvPath)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config from env: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return Config{}, fmt.Errorf("unknown ENV %q", cfg.Env)
	}

	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.Env == EnvLocal || c.Env == EnvDev
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// AllowedOrigins splits CORS_ORIGINS on commas, dropping blanks.
func (c Config) AllowedOrigins() []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
