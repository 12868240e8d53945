package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"MONGO_URI", "MONGO_DB", "PORT", "CORS_ALLOW_ORIGINS", "LOG_LEVEL", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, DefaultMongoURI, cfg.MongoURI)
	assert.Equal(t, DefaultMongoDB, cfg.MongoDB)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "jstream")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg := FromEnv()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "jstream", cfg.MongoDB)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://example.com", cfg.AllowOrigins)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := FromEnv()

	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestFromEnv_NegativeTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "-1s")

	assert.Equal(t, DefaultRequestTimeout, FromEnv().RequestTimeout)
}
