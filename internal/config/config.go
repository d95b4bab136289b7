package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the storefront client needs to talk to the
// SeedToServe API and persist its session between runs.
type Config struct {
	APIBaseURL  string
	SessionFile string
	HTTPTimeout time.Duration
	LogLevel    string

	// Dev server only.
	Port      string
	JWTSecret string
	DBFile    string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		SessionFile: getEnv("SESSION_FILE", defaultSessionFile()),
		HTTPTimeout: time.Duration(getIntEnv("HTTP_TIMEOUT_SEC", 30)) * time.Second,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		DBFile:      getEnv("DB_FILE", "devserver.db"),
	}

	return config, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedtoserve_session.json"
	}
	return filepath.Join(home, ".seedtoserve", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: %s=%q is not a valid integer, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
