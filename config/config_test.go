package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "DB_MAX_IDLE_CONNS", "REDIS_HOST", "ACCESS_PERSONAL_CHANNELS"} {
		t.Setenv(key, "")
	}
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 10, cfg.DBMaxIdleConns)
	assert.False(t, cfg.PersonalChannels)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("ACCESS_PERSONAL_CHANNELS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 7, cfg.DBMaxOpenConns)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.PersonalChannels)
}
