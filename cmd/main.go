package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/igloo_sync/internal/bus"
	"github.com/shenikar/igloo_sync/internal/config"
	v1 "github.com/shenikar/igloo_sync/internal/handler/http/v1"
	"github.com/shenikar/igloo_sync/internal/position"
	"github.com/shenikar/igloo_sync/internal/repository"
	"github.com/shenikar/igloo_sync/internal/service"
	"github.com/shenikar/igloo_sync/internal/webhook"
	"github.com/shenikar/igloo_sync/pkg/logger"
	"github.com/shenikar/igloo_sync/pkg/postgres"
	redisclient "github.com/shenikar/igloo_sync/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/igloo_sync/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Igloo Sync API
// @version 1.0
// @description Presence and geofence synchronization agent of one family member.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newSyncBus выбирает реализацию канала синхронизации
func newSyncBus(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) bus.Bus {
	if cfg.BusDriver == "memory" {
		log.Warn("Using in-process sync bus: only instances in this process will see each other")
		return bus.NewMemoryHub(log).Client(cfg.MemberID)
	}
	return bus.NewRedisBus(redisClient, cfg.MemberID, log)
}

// newSensor выбирает источник позиций. nil означает, что позиционирование не поддерживается.
func newSensor(cfg *config.Config) *position.PushSensor {
	if cfg.SensorDriver == "none" {
		return nil
	}
	return position.NewPushSensor()
}

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

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков и воркера доставки
	queueKey := webhook.QueueKey(cfg.MemberID)
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient, queueKey)
	webhookWorker := webhook.NewWebhookWorker(redisClient, queueKey, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозитория
	stateRepo := repository.NewStateRepository(dbpool, redisClient, cfg.MemberID)

	// Источник позиций и трекер
	watchOpts := position.DefaultWatchOptions()
	watchOpts.Timeout = cfg.FixTimeout
	watchOpts.MaximumAge = cfg.FixMaxAge

	var (
		sensor   position.Sensor
		receiver service.FixReceiver
	)
	if push := newSensor(cfg); push != nil {
		sensor, receiver = push, push
	}
	tracker := position.NewTracker(sensor, watchOpts, log)

	// Инициализация сервиса синхронизации
	syncService := service.NewSyncService(
		stateRepo,
		newSyncBus(cfg, redisClient, log),
		tracker,
		receiver,
		webhookPublisher,
		log,
		cfg,
	)
	if err := syncService.Start(ctx); err != nil {
		log.Fatalf("Failed to start sync service: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(syncService, log, cfg)
	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is empty, the REST API is not protected")
	}

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":      cfg.HTTPPort,
		"member_id": cfg.MemberID,
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Сначала освобождаем датчик и подписку, затем останавливаем воркер
	if err := syncService.Close(); err != nil {
		log.WithError(err).Warn("Failed to close sync service cleanly")
	}
	cancel()
	<-webhookWorker.Done()

	log.Info("Server gracefully stopped")
}
