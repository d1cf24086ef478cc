package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success: Defaults", func(t *testing.T) {
		t.Setenv("DATA_PATH", "/tmp/streak-data")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, storage.DriverMemory, cfg.StorageDriver)
		assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 100, cfg.RateLimit)
		assert.Equal(t, filepath.Join("/tmp/streak-data", "logs"), cfg.LogDir)
		assert.False(t, cfg.RedisEnabled)
	})

	t.Run("Success: Environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STORAGE_DRIVER", "SQLite")
		t.Setenv("DATA_PATH", "/var/lib/streak")
		t.Setenv("REDIS_ENABLED", "true")
		t.Setenv("REDIS_DB", "4")
		t.Setenv("JWT_TTL", "1h")
		t.Setenv("RATE_LIMIT", "5")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, storage.DriverSQLite, cfg.StorageDriver)
		assert.True(t, cfg.RedisEnabled)
		assert.Equal(t, 4, cfg.Redis.DB)
		assert.Equal(t, time.Hour, cfg.JWTTTL)
		assert.Equal(t, 5, cfg.RateLimit)

		opts := cfg.StorageOptions()
		assert.Equal(t, filepath.Join("/var/lib/streak", "streak.db"), opts.Path)
	})

	t.Run("Fail: Unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "cassandra")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Fail: Bad duration", func(t *testing.T) {
		t.Setenv("JWT_TTL", "forever")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Fail: Non positive rate limit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
