// Package config builds the startup configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the explicitly constructed runtime configuration. It is built
// once at startup and handed to the components that need it; verification and
// hashing code never reads the environment itself.
type Config struct {
	Port          string        // HTTP listen port
	JWTSecret     string        // signing secret for session tokens
	TokenTTL      time.Duration // session token expiry horizon
	BcryptCost    int           // password hash cost, 0 selects the bcrypt default
	CacheTTL      time.Duration // listing cache expiry
	RedisAddr     string        // redis host:port, empty disables caching
	RedisPassword string
}

// Load reads the configuration from environment variables, applying defaults
// for everything except the JWT secret.
func Load() Config {
	cfg := Config{
		Port:          envOr("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      72 * time.Hour,
		CacheTTL:      5 * time.Minute,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CacheTTL = d
		}
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + envOr("REDIS_PORT", "6379")
	}

	return cfg
}

// envOr returns the value of the environment variable or a fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
