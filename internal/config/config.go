package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultAPIBaseURL points at the production Momentum backend.
const DefaultAPIBaseURL = "https://momentum-back.onrender.com/api"

type Config struct {
	APIBaseURL  string
	DBPath      string
	HTTPTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		APIBaseURL:  getEnv("MOMENTUM_API_URL", DefaultAPIBaseURL),
		DBPath:      getEnv("MOMENTUM_DB", ""),
		HTTPTimeout: 30 * time.Second,
	}

	if v := os.Getenv("MOMENTUM_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
