package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jhpark/safedine-backend/config"
	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/search"
)

// Writes the seeded registry to an .xlsx workbook for offline review.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/export/main.go <output_xlsx_path>")
	}
	outputPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	store := repository.NewStore()
	repository.SeedFixtures(store)

	index := search.NewIndex(search.Config{
		SimilarityThreshold: cfg.Search.SimilarityThreshold,
		MinQueryLength:      cfg.Search.MinQueryLength,
	})

	establishmentRepo := repository.NewEstablishmentRepository(store, index)
	inspectionRepo := repository.NewInspectionRepository(store)
	violationRepo := repository.NewViolationRepository(store)
	certificationRepo := repository.NewCertificationRepository(store)
	safetyFeatureRepo := repository.NewSafetyFeatureRepository(store)

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

	f, err := reportService.BuildRegistryWorkbook()
	if err != nil {
		log.Fatal("Failed to build registry workbook:", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		log.Fatal("Failed to write workbook:", err)
	}

	fmt.Printf("Registry exported to %s\n", outputPath)
}
