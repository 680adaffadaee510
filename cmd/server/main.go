package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alzcare/screening-service/internal/cache"
	"github.com/alzcare/screening-service/internal/catalog"
	"github.com/alzcare/screening-service/internal/config"
	"github.com/alzcare/screening-service/internal/events"
	"github.com/alzcare/screening-service/internal/handlers"
	"github.com/alzcare/screening-service/internal/models"
	mongorepo "github.com/alzcare/screening-service/internal/repositories/mongo"
	"github.com/alzcare/screening-service/internal/repositories/postgres"
	"github.com/alzcare/screening-service/internal/services"
	"github.com/alzcare/screening-service/internal/session"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/alzcare/screening-service/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	logger.Info("Starting screening service", "environment", cfg.Environment, "port", cfg.Port)

	ctx := context.Background()

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.ScreeningResult{}, &models.Schedule{}); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	mongoClient, mongoDB, err := pkg.NewMongoDatabase(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)

	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.KafkaTopic,
			Logger:       utils.ToSlogLogger(logger),
		})
		if err != nil {
			logger.Error("Failed to create Kafka publisher", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPublisher
	} else {
		logger.Warn("No Kafka brokers configured, completion events disabled")
		publisher = events.NoopEventPublisher{}
	}
	defer publisher.Close()

	staticSource, err := catalog.NewFileSource(cfg.CatalogPath)
	if err != nil {
		logger.Error("Failed to load static catalog", "error", err, "path", cfg.CatalogPath)
		os.Exit(1)
	}

	cacheService := cache.NewRedisCache(redisClient, logger)
	customItems := services.NewCachedCustomItemStore(mongorepo.NewCustomItemRepository(mongoDB), cacheService, logger)

	resultRepo := postgres.NewResultRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)

	itemCatalog := catalog.New(staticSource, customItems, logger)
	locale := catalog.SystemLocale{CountryName: cfg.CountryName}
	randomizer := catalog.NewRandomizer(rand.New(rand.NewSource(time.Now().UnixNano())))
	sessions := session.NewManager()
	validator := utils.NewValidator()

	scheduleService := services.NewScheduleService(scheduleRepo, logger)
	screeningService := services.NewScreeningService(
		itemCatalog, locale, randomizer, sessions,
		resultRepo, scheduleService, publisher, logger, validator,
	)
	exportService := services.NewExportService(resultRepo, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(screeningService, scheduleService, exportService, logger)
	handlerManager.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	logger.Info("Server exited")
}
