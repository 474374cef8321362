package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
}

// defaultTokenTTLHours mirrors the expiry the original deployment shipped
// with. Almost certainly a placeholder rather than a deliberate
// non-expiring-session design; kept overridable via JWT_TTL_HOURS.
const defaultTokenTTLHours = 888888

// Load reads configuration from environment variables.
func Load() Config {
	ttlHours := defaultTokenTTLHours
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}

	return Config{
		Addr:        getenv("APP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    time.Duration(ttlHours) * time.Hour,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
