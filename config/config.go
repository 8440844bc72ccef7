package config

import (
	"os"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds all configuration for the issue tracking service
type Config struct {
	// Server configuration
	Port       string
	CORSOrigin string

	// Storage configuration
	StoreDriver   string
	MongoURI      string
	MongoDatabase string

	// Access gate
	JWTSecret    string
	JWTExpiresIn time.Duration

	// Intake rate limiting
	RedisAddress     string
	RedisPassword    string
	IssueLimitPrefix string
	IssueCreateLimit int

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadEnvFile loads key=value pairs from path into the environment. A missing
// file is not an error.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Debugf("No %s file found", path)
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "5000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),

		StoreDriver:   getEnv("STORE_DRIVER", StoreMongo),
		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDatabase: getEnv("MONGODB_DATABASE", "civictrack"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpiresIn: getDurationEnv("JWT_EXPIRES_IN", 7*24*time.Hour),

		RedisAddress:     getEnv("REDIS_ADDRESS", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		IssueLimitPrefix: getEnv("REDIS_QUEUE_FOR_ISSUE_LIMIT", "issue-limit"),
		IssueCreateLimit: getIntEnv("ISSUE_CREATE_LIMIT", 50),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Warnf("Ignoring invalid duration %s=%q", key, value)
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warnf("Ignoring invalid integer %s=%q", key, value)
	}
	return defaultValue
}
