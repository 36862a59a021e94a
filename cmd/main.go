package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loadmatrix/driverd/internal/backend"
	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/consent"
	"github.com/loadmatrix/driverd/internal/geoloc"
	v1 "github.com/loadmatrix/driverd/internal/handler/http/v1"
	"github.com/loadmatrix/driverd/internal/session"
	"github.com/loadmatrix/driverd/pkg/logger"
	redisclient "github.com/loadmatrix/driverd/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/loadmatrix/driverd/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newConsentStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (consent.Store, error) {
	if cfg.ConsentStore == "redis" {
		rdb, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis consent store: %w", err)
		}
		log.Info("Using Redis consent store")
		return consent.NewRedisStore(rdb), nil
	}

	store, err := consent.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("could not create file consent store: %w", err)
	}
	log.WithField("state_dir", cfg.StateDir).Info("Using file consent store")
	return store, nil
}

// @title Driverd Control API
// @version 1.0
// @description Local control API of the delivery marketplace driver agent.
// @host localhost:8737
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище согласий на геолокацию
	store, err := newConsentStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to init consent store: %v", err)
	}

	// Мост к геолокации устройства; без него шлюз сразу фатально блокируется
	var locator geoloc.Provider
	if cfg.DeviceBridgeURL != "" {
		locator = geoloc.NewBridgeProvider(cfg.DeviceBridgeURL)
		log.WithField("bridge_url", cfg.DeviceBridgeURL).Info("Device geolocation bridge configured")
	} else {
		log.Warn("DEVICE_BRIDGE_URL is not set, geolocation capability is absent")
	}

	// Клиент marketplace API
	api := backend.NewClient(cfg, log)
	if cfg.DriverEmail != "" && cfg.DriverPassword != "" {
		if _, err := api.Login(ctx, cfg.DriverEmail, cfg.DriverPassword); err != nil {
			log.Fatalf("Failed to authenticate driver: %v", err)
		}
	} else {
		log.Warn("Driver credentials are not configured, backend calls will be unauthenticated")
	}

	// Контроллер жизненного цикла панели водителя
	sessions := session.NewController(cfg, store, locator, api, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessions, api, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	apiGroup := router.Group("/api/v1")
	apiGroup.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(apiGroup)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.ListenPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("Driver agent control API started on port %s", cfg.ListenPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down agent...")

	// Размонтируем панель детерминированно: таймер отправки не должен
	// пережить остановку агента
	if err := sessions.Unmount(); err != nil && err != session.ErrNoSession {
		log.WithError(err).Warn("Failed to unmount dashboard session")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Agent gracefully stopped")
}
