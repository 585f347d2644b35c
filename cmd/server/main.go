package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhpark/safedine-backend/config"
	"github.com/jhpark/safedine-backend/internal/app/controller"
	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/router"
	"github.com/jhpark/safedine-backend/internal/scheduler"
	"github.com/jhpark/safedine-backend/internal/search"
	"github.com/jhpark/safedine-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting SAFEDINE Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize the in-memory store with fixture data
	store := repository.NewStore()
	repository.SeedFixtures(store)

	// Initialize the fuzzy index
	index := search.NewIndex(search.Config{
		SimilarityThreshold: cfg.Search.SimilarityThreshold,
		MinQueryLength:      cfg.Search.MinQueryLength,
	})

	// Initialize repositories
	establishmentRepo := repository.NewEstablishmentRepository(store, index)
	inspectionRepo := repository.NewInspectionRepository(store)
	violationRepo := repository.NewViolationRepository(store)
	certificationRepo := repository.NewCertificationRepository(store)
	safetyFeatureRepo := repository.NewSafetyFeatureRepository(store)

	// Seeded establishments must be searchable before the first request
	establishments, err := establishmentRepo.FindAll()
	if err != nil {
		logger.Fatal("Failed to load seeded establishments", err)
	}
	index.Rebuild(establishments)

	countFields := make(map[string]interface{}, len(store.Counts()))
	for k, v := range store.Counts() {
		countFields[k] = v
	}
	logger.Info("In-memory store seeded", countFields)

	// Initialize services
	establishmentService := service.NewEstablishmentService(
		establishmentRepo,
		inspectionRepo,
		violationRepo,
		certificationRepo,
		safetyFeatureRepo,
		index,
		service.EstablishmentServiceConfig{
			MinQueryLength:  cfg.Search.MinQueryLength,
			SuggestionLimit: cfg.Search.SuggestionLimit,
		},
	)
	inspectionService := service.NewInspectionService(establishmentRepo, inspectionRepo, violationRepo)
	reportService := service.NewReportService(establishmentService, inspectionService)

	// Initialize controllers
	establishmentController := controller.NewEstablishmentController(
		establishmentService,
		cfg.Search.DefaultPageSize,
		cfg.Search.MaxPageSize,
	)
	inspectionController := controller.NewInspectionController(inspectionService)
	reportController := controller.NewReportController(reportService)

	// Start the certification expiry sweep
	certScheduler := scheduler.NewCertificationScheduler(
		establishmentService,
		cfg.Scheduler.CertExpiryCron,
		cfg.Scheduler.CertExpiryWindowDays,
	)
	if err := certScheduler.Start(); err != nil {
		logger.Warn("Certification expiry scheduler not running", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer certScheduler.Stop()

	// Setup router
	r := router.NewRouter(establishmentController, inspectionController, reportController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
