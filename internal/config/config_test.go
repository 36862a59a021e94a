package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Подготовка
	t.Setenv("BACKEND_URL", "http://localhost:5000")

	// Действие
	cfg, err := LoadConfig()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
	assert.Equal(t, "8737", cfg.ListenPort)
	assert.Equal(t, "file", cfg.ConsentStore)
	assert.Equal(t, 7*24*time.Hour, cfg.ConsentTTL)
	assert.Equal(t, time.Hour, cfg.ResumeNoticeAfter)
	assert.Equal(t, 7*time.Second, cfg.ReportInterval)
	assert.Empty(t, cfg.DeviceBridgeURL)
}

func TestLoadConfig_MissingBackendURL(t *testing.T) {
	// Подготовка
	t.Setenv("BACKEND_URL", "")

	// Действие
	cfg, err := LoadConfig()

	// Проверки
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "BACKEND_URL")
}

func TestLoadConfig_InvalidConsentStore(t *testing.T) {
	// Подготовка
	t.Setenv("BACKEND_URL", "http://localhost:5000")
	t.Setenv("CONSENT_STORE", "postgres")

	// Действие
	cfg, err := LoadConfig()

	// Проверки
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "CONSENT_STORE")
}

func TestLoadConfig_Overrides(t *testing.T) {
	// Подготовка
	t.Setenv("BACKEND_URL", "http://localhost:5000")
	t.Setenv("REPORT_INTERVAL", "3s")
	t.Setenv("CONSENT_TTL", "24h")
	t.Setenv("CONSENT_STORE", "redis")
	t.Setenv("API_KEYS", "key-1, key-2")

	// Действие
	cfg, err := LoadConfig()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.ReportInterval)
	assert.Equal(t, 24*time.Hour, cfg.ConsentTTL)
	assert.Equal(t, "redis", cfg.ConsentStore)
	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
}

func TestLoadConfig_MalformedDurationFallsBack(t *testing.T) {
	// Подготовка
	t.Setenv("BACKEND_URL", "http://localhost:5000")
	t.Setenv("REPORT_INTERVAL", "seven seconds")

	// Действие
	cfg, err := LoadConfig()

	// Проверки: неразбираемое значение заменяется значением по умолчанию
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.ReportInterval)
}
