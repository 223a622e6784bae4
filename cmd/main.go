package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lojamoz/internal/app/loja/config"
	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/handler"
	"lojamoz/internal/app/loja/infrastructure"
	infrahttp "lojamoz/internal/app/loja/infrastructure/http"
	"lojamoz/internal/app/loja/infrastructure/messaging"
	"lojamoz/internal/app/loja/processor"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/seed"
	"lojamoz/internal/app/loja/service"
	"lojamoz/internal/app/loja/util"
	"lojamoz/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger.Init("loja", getEnv("LOG_LEVEL", "info"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database connected")

	if err := migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	if err := seed.Run(ctx, categoryRepo, productRepo, adminRepo); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	redisClient, err := util.NewRedisClient(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, category cache disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	var kafkaProducer infrastructure.MessagePublisher
	if cfg.Kafka.Enabled {
		producer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		kafkaProducer = producer
		logger.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("kafka producer started")
	}

	tokenManager := util.NewTokenManager(
		cfg.JWT.AdminSecret,
		cfg.JWT.UserSecret,
		cfg.JWT.AdminDuration,
		cfg.JWT.UserDuration,
	)
	fakeStoreClient := infrahttp.NewClient(cfg.Sync.FakeStoreURL)

	catalogService := service.NewCatalogService(categoryRepo, productRepo, redisClient, fakeStoreClient)
	userService := service.NewUserService(userRepo, tokenManager)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, kafkaProducer)
	adminService := service.NewAdminService(adminRepo, tokenManager)

	cronScheduler := processor.NewCronScheduler(orderRepo)
	if err := cronScheduler.Start(ctx, cfg.Cron.StatsSchedule); err != nil {
		logger.Fatal().Err(err).Msg("failed to start cron scheduler")
	}
	defer cronScheduler.Stop()

	authMiddleware := handler.NewAuthMiddleware(tokenManager, adminService)
	router := handler.SetupRoutes(
		handler.NewCatalogHandler(catalogService),
		handler.NewUserHandler(userService),
		handler.NewFavoriteHandler(favoriteService),
		handler.NewOrderHandler(orderService),
		handler.NewAdminHandler(adminService),
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	server := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown failed")
	}

	logger.Info().Msg("stopped")
}

// connectDB opens the configured store: postgres in deployments,
// sqlite for local runs. Postgres connects with retries so the service
// survives starting before the database in Docker.
func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}

	if cfg.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				err = pingErr
			} else {
				sqlDB.SetMaxOpenConns(10)
				sqlDB.SetMaxIdleConns(5)
				sqlDB.SetConnMaxLifetime(5 * time.Minute)
				return db, nil
			}
		}
		logger.Warn().Err(err).Int("attempt", i+1).Msg("database connection failed, retrying")
		time.Sleep(3 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect after 10 attempts: %w", err)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.User{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Favorite{},
		&entity.Admin{},
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
