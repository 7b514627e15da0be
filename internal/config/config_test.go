package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("STORE_STRICT", "true")
	t.Setenv("WARNING_WINDOW_DAYS", "15")
	t.Setenv("REDIS_DIAL_TIMEOUT", "2s")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.True(t, cfg.Store.Strict)
	assert.Equal(t, 15, cfg.Store.WarningWindowDays)
	assert.Equal(t, 2*time.Second, cfg.Redis.DialTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("API_KEY", "")
	t.Setenv("WARNING_WINDOW_DAYS", "")

	cfg := Load()

	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, 30, cfg.Store.WarningWindowDays)
	assert.False(t, cfg.Store.Strict)
	assert.Empty(t, cfg.Suggest.APIKey)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "America/Sao_Paulo"}
	if loc := cfg.Location(); loc != time.UTC {
		assert.Equal(t, "America/Sao_Paulo", loc.String())
	}

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"
	t.Setenv(key, "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getEnvDuration(key, time.Second))

	t.Setenv(key, "soon")
	assert.Equal(t, time.Second, getEnvDuration(key, time.Second))
}
