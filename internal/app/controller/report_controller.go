package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/errors"
	"github.com/jhpark/safedine-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetRegistry streams the full registry workbook as an attachment.
func (ctrl *ReportController) GetRegistry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, err := ctrl.reportService.BuildRegistryWorkbook()
	if err != nil {
		log.Error("Failed to build registry workbook", err, nil)
		errors.RespondWithError(c, http.StatusInternalServerError, errors.ReportBuildFailed, "Failed to build report")
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("Failed to serialize registry workbook", err, nil)
		errors.RespondWithError(c, http.StatusInternalServerError, errors.ReportBuildFailed, "Failed to build report")
		return
	}

	filename := "registry-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
