// Package config reads configuration from the environment and wires up
// logging. One Config is constructed at process start and passed to each
// component; there are no hidden globals.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider names for the completion backend.
const (
	ProviderGoogleAI = "googleai"
	ProviderOllama   = "ollama"
)

// Config holds all configuration values.
type Config struct {
	// Completion provider
	Provider     string
	GeminiAPIKey string
	OllamaHost   string

	// Messaging client
	BackendURL  string // empty means "talk to the local server"
	EmbedOrigin string // hostname the widget believes it is embedded on
	DevMode     bool   // gates the direct client-side fallback

	// Server
	Port           string
	RequestTimeout time.Duration

	// Persona
	PersonaFile string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honoured for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Provider:     getEnv("MUHAFIZ_PROVIDER", ProviderGoogleAI),
		GeminiAPIKey: firstEnv("MUHAFIZ_API_KEY", "API_KEY"),
		OllamaHost:   getEnv("OLLAMA_HOST", "http://localhost:11434"),

		BackendURL:  os.Getenv("MUHAFIZ_BACKEND_URL"),
		EmbedOrigin: os.Getenv("MUHAFIZ_EMBED_ORIGIN"),
		DevMode:     getEnv("MUHAFIZ_DEV_MODE", "false") == "true",

		Port:           getEnv("MUHAFIZ_PORT", "8484"),
		RequestTimeout: parseDuration(getEnv("MUHAFIZ_REQUEST_TIMEOUT", "60s"), 60*time.Second),

		PersonaFile: os.Getenv("MUHAFIZ_PERSONA_FILE"),

		LogFile:  getEnv("MUHAFIZ_LOG_FILE", "/tmp/muhafiz.log"),
		LogLevel: parseLogLevel(getEnv("MUHAFIZ_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// firstEnv returns the first non-empty value among the given keys.
// MUHAFIZ_API_KEY wins over the legacy API_KEY name.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
}

func parseDuration(s string, defaultVal time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
