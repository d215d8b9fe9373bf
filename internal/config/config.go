// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Session store backends accepted by SESSION_STORE.
const (
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AuthTokenSecret is the HMAC key identity-provider ID tokens are signed with. Required.
	AuthTokenSecret string

	// AuthIssuer, when set, must equal the "iss" claim of every ID token.
	AuthIssuer string

	// SessionTTL is how long a login stays valid. Defaults to 7 days.
	SessionTTL time.Duration

	// SessionStore selects where sessions live: "postgres" (default) or "redis".
	SessionStore string

	// RedisAddr is the host:port of the Redis server. Required when SessionStore is "redis".
	RedisAddr string

	// CookieSecure sets the Secure attribute on the session cookie. Defaults to true.
	CookieSecure bool

	// OverpassURL is the Overpass interpreter endpoint. Empty means the public instance.
	OverpassURL string

	// OverpassTimeout bounds a whole place fetch, including the server-side query. Defaults to 100s.
	OverpassTimeout time.Duration

	// PlacesCacheTTL is how long a fetched place list is reused. Defaults to 0,
	// so every request re-fetches the full list.
	PlacesCacheTTL time.Duration

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AuthIssuer:   os.Getenv("AUTH_ISSUER"),
		SessionStore: strings.ToLower(getEnv("SESSION_STORE", SessionStorePostgres)),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		OverpassURL:  os.Getenv("OVERPASS_URL"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.OverpassTimeout, err = getDuration("OVERPASS_HTTP_TIMEOUT", 100*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PlacesCacheTTL, err = getDuration("PLACES_CACHE_TTL", 0); err != nil {
		return Config{}, err
	}
	if cfg.CookieSecure, err = getBool("COOKIE_SECURE", true); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		return Config{}, err
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.AuthTokenSecret = os.Getenv("AUTH_TOKEN_SECRET")
	if cfg.AuthTokenSecret == "" {
		missing = append(missing, "AUTH_TOKEN_SECRET")
	}

	switch cfg.SessionStore {
	case SessionStorePostgres:
	case SessionStoreRedis:
		if cfg.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	default:
		return Config{}, fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStorePostgres, SessionStoreRedis, cfg.SessionStore)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.PlacesCacheTTL < 0 {
		return Config{}, fmt.Errorf("PLACES_CACHE_TTL must not be negative, got %s", cfg.PlacesCacheTTL)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses key with time.ParseDuration (e.g. "90s", "168h").
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
