package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("JWT_SECRET_KEY", "")

	cfg := LoadConfig()

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Len(t, cfg.JWTSecretKey, 64)
	assert.True(t, cfg.JWTSecretGenerated)
	assert.NotEqual(t, cfg.JWTSecretKey, LoadConfig().JWTSecretKey, "each process gets its own secret")
	assert.Equal(t, 12, cfg.JWTExpiryHours)
	assert.Equal(t, SetupModeNone, cfg.SheetsSetupMode)
	assert.Equal(t, 20, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, 10, cfg.LoginRateLimitPerMinute)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadConfigPrefixedValuesWin(t *testing.T) {
	t.Setenv("ENV_TYPE", "server")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SERVER_SERVER_PORT", "9000")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("SERVER_REDIS_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "s3cret", cfg.JWTSecretKey)
	assert.False(t, cfg.JWTSecretGenerated)
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, 20, cfg.RateLimitRPS)
}

func TestLoadConfigRequiresSheetID(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("STORE_DRIVER", "sheets")
	t.Setenv("GOOGLE_SHEET_ID", "")
	t.Setenv("LOCAL_GOOGLE_SHEET_ID", "")

	assert.Panics(t, func() { LoadConfig() })

	t.Setenv("GOOGLE_SHEET_ID", "sheet-123")
	assert.Equal(t, "sheet-123", LoadConfig().GoogleSheetID)
}

func TestLoadConfigReleaseRequiresJWTSecret(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET_KEY", "")

	assert.Panics(t, func() { LoadConfig() })

	t.Setenv("JWT_SECRET_KEY", "s3cret")
	cfg := LoadConfig()
	assert.Equal(t, "s3cret", cfg.JWTSecretKey)
	assert.False(t, cfg.JWTSecretGenerated)
}
