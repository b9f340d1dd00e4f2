// README: Config loader with env defaults for logging and park limits; reads .env when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string
	MaxParks int
}

func Load() (Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	cfg.LogLevel = envOrDefault("PARKSIM_LOG_LEVEL", "warn")
	cfg.MaxParks = envOrDefaultInt("PARKSIM_MAX_PARKS", 20)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
