package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the portal needs. It is loaded once in
// main and handed to the components that use it; nothing reads the
// environment after startup.
type Config struct {
	ListenAddr string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

func Load() *Config {
	return &Config{
		ListenAddr:         GetEnvAsString("LISTEN_ADDR", ":3000"),
		MongoURI:           GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      GetEnvAsString("MONGO_DB", "covidDB"),
		RedisAddr:          GetEnvAsString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            GetEnvAsInt("REDIS_DB", 0),
		SessionSecret:      GetEnvAsString("SESSION_SECRET", "Our little secret."),
		SessionTTL:         GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
		GoogleClientID:     os.Getenv("CLIENT_ID"),
		GoogleClientSecret: os.Getenv("CLIENT_SECRET"),
		GoogleCallbackURL:  GetEnvAsString("GOOGLE_CALLBACK_URL", "http://localhost:3000/auth/google/covid"),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
