package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoAndRedis(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("REDIS_URL", "")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	for _, name := range []string{"PORT", "MONGO_DB", "UPLOAD_DIR", "STORE_TIMEOUT", "RATE_LIMIT_PER_SEC", "RATE_LIMIT_BURST"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "carepoint", cfg.MongoDB)
	assert.Equal(t, "public/doctor-notes", cfg.UploadDir)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 15.0, cfg.RatePerSec)
	assert.Equal(t, 30, cfg.RateBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("PORT", "9000")
	t.Setenv("MONGO_DB", "hospital")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "hospital", cfg.MongoDB)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 30, cfg.RateBurst) // falls back to the default
}
