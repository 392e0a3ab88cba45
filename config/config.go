package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Port         string
	MongoURI     string
	MongoDB      string
	RedisURL     string
	UploadDir    string
	StoreTimeout time.Duration
	RatePerSec   float64
	RateBurst    int
}

// Load reads configuration from environment variables. MONGO_URI and
// REDIS_URL are mandatory; everything else has a default.
func Load() (*AppConfig, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("missing MONGO_URI environment variable")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	return &AppConfig{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     mongoURI,
		MongoDB:      getEnv("MONGO_DB", "carepoint"),
		RedisURL:     redisURL,
		UploadDir:    getEnv("UPLOAD_DIR", "public/doctor-notes"),
		StoreTimeout: getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
		RatePerSec:   getEnvAsFloat("RATE_LIMIT_PER_SEC", 15),
		RateBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),
	}, nil
}

func getEnv(name, defaultValue string) string {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(name); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
		log.Printf("Warning: Invalid float value for %s, using default: %f", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Printf("Warning: Invalid duration value for %s, using default: %s", name, defaultValue.String())
	}
	return defaultValue
}
