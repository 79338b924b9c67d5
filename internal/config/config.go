package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	Environment     string // Label only, reported in health/stats responses
	ServerName      string
	StaticDirectory string
	LogDirectory    string // Empty disables per-level log files
	LogLevel        string
	JournalDSN      string
	JournalLimit    int // Max retained journal rows, 0 = unbounded
	CORSOrigin      string
	ShutdownTimeout int // Seconds
}

// Load reads the optional .env file and builds the configuration from the environment.
func Load() *Config {
	// A missing .env file is normal in production.
	_ = godotenv.Load(getEnv("ENV_FILE", ".env"))

	return &Config{
		Port:            getEnvAsInt("PORT", 3000),
		Environment:     getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
		ServerName:      getEnv("SERVER_NAME", "Vision AI Pro API"),
		StaticDirectory: getEnv("STATIC_DIR", "public"),
		LogDirectory:    getEnv("LOG_DIR", filepath.Join(".", "logs")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		JournalDSN:      getEnv("JOURNAL_DSN", ":memory:"),
		JournalLimit:    getEnvAsInt("JOURNAL_LIMIT", 1000),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
