package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "5000"
	DefaultMongoURI       = "mongodb://localhost:27017"
	DefaultMongoDB        = "music_app"
	DefaultAllowOrigins   = "*"
	DefaultLogLevel       = "info"
	DefaultRequestTimeout = 5 * time.Second
)

type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	AllowOrigins   string
	LogLevel       log.Level
	RequestTimeout time.Duration
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// LoadConfig reads .env (if any) and the process environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	cfg := Config{
		MongoURI:       getEnv("MONGO_URI", DefaultMongoURI),
		MongoDB:        getEnv("MONGO_DB", DefaultMongoDB),
		Port:           getEnv("PORT", DefaultPort),
		AllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", DefaultAllowOrigins),
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       log.InfoLevel,
	}

	if raw := getEnv("REQUEST_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Warn("invalid REQUEST_TIMEOUT, using default", "value", raw, "default", DefaultRequestTimeout)
		} else {
			cfg.RequestTimeout = d
		}
	}

	if raw := getEnv("LOG_LEVEL", DefaultLogLevel); raw != "" {
		lvl, err := log.ParseLevel(raw)
		if err != nil {
			log.Warn("invalid LOG_LEVEL, using default", "value", raw, "default", DefaultLogLevel)
		} else {
			cfg.LogLevel = lvl
		}
	}

	return cfg
}
