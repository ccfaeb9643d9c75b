package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shareit-hub/service-shareit/internal/application"
	"github.com/shareit-hub/service-shareit/internal/config"
	"github.com/shareit-hub/service-shareit/internal/handler"
	"github.com/shareit-hub/service-shareit/internal/platform/clock"
	"github.com/shareit-hub/service-shareit/internal/platform/database"
	"github.com/shareit-hub/service-shareit/internal/platform/httpx"
	"github.com/shareit-hub/service-shareit/internal/platform/kafka"
	"github.com/shareit-hub/service-shareit/internal/platform/logger"
	"github.com/shareit-hub/service-shareit/internal/repository"
	"go.uber.org/zap"
)

const serviceName = "service-shareit"

type eventPublisher interface {
	application.EventPublisher
	Close() error
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.AppEnv),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()

	// Run database migrations
	if cfg.IsDevelopment() {
		if err := db.AutoMigrate(repository.AllModels()...); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), cfg.MigrationsPath, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize event publisher
	var publisher eventPublisher = kafka.NoopPublisher{}
	if cfg.KafkaConfig.Enabled() {
		publisher = kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		log.Info("publishing booking events",
			zap.Strings("brokers", cfg.KafkaConfig.Brokers),
			zap.String("topic", cfg.KafkaConfig.Topic),
		)
	} else {
		log.Warn("no kafka brokers configured, booking events are dropped")
	}
	defer func() { _ = publisher.Close() }()

	// Initialize repositories
	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormItemRequestRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	tx := database.NewTransactor(db)
	clk := clock.System{}

	// Initialize application services
	userService := application.NewUserService(userRepo, log)
	itemService := application.NewItemService(tx, itemRepo, commentRepo, bookingRepo, userRepo, requestRepo, clk, log)
	requestService := application.NewItemRequestService(requestRepo, itemRepo, userRepo, clk, log)
	bookingService := application.NewBookingService(
		tx,
		bookingRepo,
		userRepo,
		itemRepo,
		publisher,
		cfg.KafkaConfig.Topic,
		clk,
		log,
	)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := httpx.RegisterValidators(clk); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}
	router := gin.New()

	// Apply global middleware
	router.Use(httpx.RecoveryMiddleware(log))
	router.Use(httpx.RequestIDMiddleware())
	router.Use(httpx.LoggerMiddleware(log))
	router.Use(httpx.CORSMiddleware())
	router.Use(httpx.SecurityHeadersMiddleware())

	// Register health check routes
	httpx.NewHealthHandler(sqlDB, serviceName).RegisterRoutes(router)

	// Register routes
	handler.NewUserHandler(userService).RegisterRoutes(&router.RouterGroup)
	handler.NewItemHandler(itemService).RegisterRoutes(&router.RouterGroup)
	handler.NewBookingHandler(bookingService).RegisterRoutes(&router.RouterGroup)
	handler.NewItemRequestHandler(requestService).RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
