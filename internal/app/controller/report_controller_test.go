package controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/search"
)

func setupReportControllerTest(t *testing.T) (*ReportController, *gin.Engine) {
	store := repository.NewStore()
	repository.SeedFixtures(store)

	index := search.NewIndex(search.Config{})
	establishmentRepo := repository.NewEstablishmentRepository(store, index)
	inspectionRepo := repository.NewInspectionRepository(store)
	violationRepo := repository.NewViolationRepository(store)
	certificationRepo := repository.NewCertificationRepository(store)
	safetyFeatureRepo := repository.NewSafetyFeatureRepository(store)

	establishments, err := establishmentRepo.FindAll()
	require.NoError(t, err)
	index.Rebuild(establishments)

	establishmentService := service.NewEstablishmentService(
		establishmentRepo, inspectionRepo, violationRepo, certificationRepo, safetyFeatureRepo,
		index, service.EstablishmentServiceConfig{},
	)
	inspectionService := service.NewInspectionService(establishmentRepo, inspectionRepo, violationRepo)
	reportService := service.NewReportService(establishmentService, inspectionService)
	reportController := NewReportController(reportService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return reportController, router
}

func TestReportController_GetRegistry(t *testing.T) {
	controller, router := setupReportControllerTest(t)
	router.GET("/reports/registry", controller.GetRegistry)

	req := httptest.NewRequest(http.MethodGet, "/reports/registry", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	// The payload must round-trip through excelize.
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Establishments")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
