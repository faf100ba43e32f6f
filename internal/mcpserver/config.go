package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/v19i/openapi-enum-arrays/generator"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Generation defaults, overridden per call by tool arguments.
	ArrayPrefix string
	Format      string
	Verify      bool

	// extract_enums pagination.
	ExtractLimit int
	MaxLimit     int

	// MaxInlineSize bounds the content argument in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from ENUMARRAYS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("ENUMARRAYS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("ENUMARRAYS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("ENUMARRAYS_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("ENUMARRAYS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("ENUMARRAYS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ArrayPrefix:        os.Getenv("ENUMARRAYS_ARRAY_PREFIX"),
		Format:             envFormat("ENUMARRAYS_FORMAT"),
		Verify:             envBool("ENUMARRAYS_VERIFY", false),
		ExtractLimit:       envInt("ENUMARRAYS_EXTRACT_LIMIT", 100),
		MaxLimit:           envInt("ENUMARRAYS_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("ENUMARRAYS_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// envFormat returns the output format named by key, or "" when unset or
// not a known format.
func envFormat(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	f, err := generator.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return string(f)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
