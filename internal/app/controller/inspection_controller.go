package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/errors"
	"github.com/jhpark/safedine-backend/internal/middleware"
)

type InspectionController struct {
	inspectionService service.InspectionService
}

func NewInspectionController(inspectionService service.InspectionService) *InspectionController {
	return &InspectionController{inspectionService: inspectionService}
}

type InspectionRequest struct {
	EstablishmentID string    `json:"establishment_id" binding:"required"`
	InspectionDate  time.Time `json:"inspection_date" binding:"required"`
	Score           *int      `json:"score" binding:"required"`
	Grade           string    `json:"grade" binding:"required"`
	InspectorName   string    `json:"inspector_name" binding:"required"`
	InspectorID     string    `json:"inspector_id" binding:"required"`
	Notes           *string   `json:"notes"`
}

type ViolationRequest struct {
	Code         string     `json:"code" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	Severity     string     `json:"severity" binding:"required"`
	Points       *int       `json:"points" binding:"required"`
	Resolved     bool       `json:"resolved"`
	ResolvedDate *time.Time `json:"resolved_date"`
	Category     string     `json:"category" binding:"required"`
}

// ListByEstablishment returns the inspection history for an establishment,
// newest first. An unknown establishment yields an empty list.
func (ctrl *InspectionController) ListByEstablishment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	establishmentID := c.Param("id")

	inspections, err := ctrl.inspectionService.GetInspectionsByEstablishmentID(establishmentID)
	if err != nil {
		log.Error("Failed to fetch inspections", err, map[string]interface{}{
			"establishment_id": establishmentID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, inspections)
}

func (ctrl *InspectionController) GetByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	inspection, err := ctrl.inspectionService.GetInspectionByID(id)
	if err != nil {
		if err == service.ErrInspectionNotFound {
			log.Warn("Inspection not found", map[string]interface{}{
				"inspection_id": id,
			})
			errors.NotFound(c, errors.InspectionNotFound, "Inspection not found")
			return
		}
		log.Error("Failed to fetch inspection", err, map[string]interface{}{
			"inspection_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, inspection)
}

func (ctrl *InspectionController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid inspection creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	if !model.ValidGrade(req.Grade) {
		errors.BadRequest(c, errors.InspectionInvalidGrade, "grade must be A, B or C")
		return
	}
	if *req.Score < 0 || *req.Score > 100 {
		errors.BadRequest(c, errors.ValidationInvalidRange, "score must be between 0 and 100")
		return
	}

	created, err := ctrl.inspectionService.CreateInspection(service.CreateInspectionInput{
		EstablishmentID: req.EstablishmentID,
		InspectionDate:  req.InspectionDate,
		Score:           *req.Score,
		Grade:           model.Grade(req.Grade),
		InspectorName:   req.InspectorName,
		InspectorID:     req.InspectorID,
		Notes:           req.Notes,
	})
	if err != nil {
		if err == service.ErrEstablishmentNotFound {
			errors.NotFound(c, errors.EstablishmentNotFound, "Establishment not found")
			return
		}
		log.Error("Failed to create inspection", err, map[string]interface{}{
			"establishment_id": req.EstablishmentID,
		})
		errors.InternalError(c, "")
		return
	}

	log.Info("Inspection created", map[string]interface{}{
		"inspection_id": created.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Inspection created successfully",
		"inspection": created,
	})
}

func (ctrl *InspectionController) AddViolation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	inspectionID := c.Param("id")

	var req ViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid violation request", map[string]interface{}{
			"inspection_id": inspectionID,
			"error":         err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	if !model.ValidSeverity(req.Severity) {
		errors.BadRequest(c, errors.ViolationInvalidSeverity, "severity must be critical, major or minor")
		return
	}
	if *req.Points <= 0 {
		errors.BadRequest(c, errors.ValidationInvalidRange, "points must be a positive integer")
		return
	}

	created, err := ctrl.inspectionService.AddViolation(inspectionID, service.CreateViolationInput{
		Code:         req.Code,
		Description:  req.Description,
		Severity:     model.Severity(req.Severity),
		Points:       *req.Points,
		Resolved:     req.Resolved,
		ResolvedDate: req.ResolvedDate,
		Category:     req.Category,
	})
	if err != nil {
		if err == service.ErrInspectionNotFound {
			errors.NotFound(c, errors.InspectionNotFound, "Inspection not found")
			return
		}
		log.Error("Failed to create violation", err, map[string]interface{}{
			"inspection_id": inspectionID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Violation created successfully",
		"violation": created,
	})
}
