package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxSpecBytes caps the size of inline spec content accepted by tools.
	MaxSpecBytes int
	// MaxViolations caps the number of violations returned per call.
	MaxViolations int
	// Verbose enables debug logging through the pipeline logger.
	Verbose bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASLINT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxSpecBytes:  envInt("OASLINT_MAX_SPEC_BYTES", 10*1024*1024),
		MaxViolations: envInt("OASLINT_MAX_VIOLATIONS", 200),
		Verbose:       envBool("OASLINT_VERBOSE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
