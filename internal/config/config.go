package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации агента
type Config struct {
	// Backend API
	BackendURL     string        `env:"BACKEND_URL"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	// Учетные данные водителя для логина при старте агента
	DriverEmail    string `env:"DRIVER_EMAIL"`
	DriverPassword string `env:"DRIVER_PASSWORD"`

	// Локальный управляющий API
	ListenPort string `env:"LISTEN_PORT" envDefault:"8737"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// API-ключи для доступа к локальному API
	APIKeys []string `env:"API_KEYS"`

	// Хранилище согласий на геолокацию
	ConsentStore string `env:"CONSENT_STORE" envDefault:"file"`
	StateDir     string `env:"STATE_DIR" envDefault:"."`

	// Redis Config (используется при CONSENT_STORE=redis)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Мост к геолокации устройства; пустое значение означает,
	// что геолокация на устройстве недоступна
	DeviceBridgeURL string `env:"DEVICE_BRIDGE_URL"`

	// Политика кеша согласий
	ConsentTTL        time.Duration `env:"CONSENT_TTL" envDefault:"168h"`
	ResumeNoticeAfter time.Duration `env:"RESUME_NOTICE_AFTER" envDefault:"1h"`

	// Параметры проб геолокации
	SilentProbeTimeout   time.Duration `env:"SILENT_PROBE_TIMEOUT" envDefault:"5s"`
	SilentMaxFixAge      time.Duration `env:"SILENT_MAX_FIX_AGE" envDefault:"5m"`
	FirstProbeTimeout    time.Duration `env:"FIRST_PROBE_TIMEOUT" envDefault:"10s"`
	PeriodicProbeTimeout time.Duration `env:"PERIODIC_PROBE_TIMEOUT" envDefault:"8s"`
	PeriodicMaxFixAge    time.Duration `env:"PERIODIC_MAX_FIX_AGE" envDefault:"30s"`

	// Период отправки координат на backend
	ReportInterval time.Duration `env:"REPORT_INTERVAL" envDefault:"7s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		BackendURL:           os.Getenv("BACKEND_URL"),
		BackendTimeout:       getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		DriverEmail:          os.Getenv("DRIVER_EMAIL"),
		DriverPassword:       os.Getenv("DRIVER_PASSWORD"),
		ListenPort:           getEnv("LISTEN_PORT", "8737"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		ConsentStore:         getEnv("CONSENT_STORE", "file"),
		StateDir:             getEnv("STATE_DIR", "."),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		DeviceBridgeURL:      os.Getenv("DEVICE_BRIDGE_URL"),
		ConsentTTL:           getEnvAsDuration("CONSENT_TTL", 7*24*time.Hour),
		ResumeNoticeAfter:    getEnvAsDuration("RESUME_NOTICE_AFTER", time.Hour),
		SilentProbeTimeout:   getEnvAsDuration("SILENT_PROBE_TIMEOUT", 5*time.Second),
		SilentMaxFixAge:      getEnvAsDuration("SILENT_MAX_FIX_AGE", 5*time.Minute),
		FirstProbeTimeout:    getEnvAsDuration("FIRST_PROBE_TIMEOUT", 10*time.Second),
		PeriodicProbeTimeout: getEnvAsDuration("PERIODIC_PROBE_TIMEOUT", 8*time.Second),
		PeriodicMaxFixAge:    getEnvAsDuration("PERIODIC_MAX_FIX_AGE", 30*time.Second),
		ReportInterval:       getEnvAsDuration("REPORT_INTERVAL", 7*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable is required")
	}

	if cfg.ConsentStore != "file" && cfg.ConsentStore != "redis" {
		return nil, fmt.Errorf("CONSENT_STORE must be either 'file' or 'redis', got %q", cfg.ConsentStore)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
