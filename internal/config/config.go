// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig carries every tunable the binaries read at startup.
type AppConfig struct {
	// GeminiAPIKey enables scenario generation. Empty means offline mode:
	// the built-in sample scenario is used instead.
	GeminiAPIKey string

	// Model settings for the scenario provider.
	ModelName   string
	Temperature float32
	MaxTokens   int32

	// InitialCapital is the cash a new game starts with.
	InitialCapital float64

	// DataDir is where scenarios, summaries and profiles are stored.
	DataDir string

	// HTTPAddr is the API server listen address.
	HTTPAddr string

	// LogFile receives rotated log output alongside stdout.
	LogFile string
}

// Load reads the .env file (if present) and builds the configuration from
// environment variables with built-in defaults.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	return AppConfig{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		ModelName:      envString("MODEL_NAME", "gemini-2.5-flash"),
		Temperature:    float32(envFloat("TEMPERATURE", 1.0)),
		MaxTokens:      int32(envInt("MAX_TOKENS", 65536)),
		InitialCapital: envFloat("INITIAL_CAPITAL", 1000),
		DataDir:        envString("DATA_DIR", "data"),
		HTTPAddr:       envString("HTTP_ADDR", ":8000"),
		LogFile:        envString("LOG_FILE", "storyvest.log"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}
