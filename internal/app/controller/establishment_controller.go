package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/errors"
	"github.com/jhpark/safedine-backend/internal/middleware"
)

type EstablishmentController struct {
	establishmentService service.EstablishmentService
	defaultPageSize      int
	maxPageSize          int
}

func NewEstablishmentController(establishmentService service.EstablishmentService, defaultPageSize, maxPageSize int) *EstablishmentController {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &EstablishmentController{
		establishmentService: establishmentService,
		defaultPageSize:      defaultPageSize,
		maxPageSize:          maxPageSize,
	}
}

type EstablishmentRequest struct {
	Name          string             `json:"name" binding:"required"`
	Address       string             `json:"address" binding:"required"`
	City          string             `json:"city" binding:"required"`
	State         string             `json:"state" binding:"required"`
	ZipCode       string             `json:"zip_code" binding:"required"`
	BusinessType  string             `json:"business_type" binding:"required"`
	Cuisine       *string            `json:"cuisine"`
	LicenseNumber *string            `json:"license_number"`
	Coordinates   *model.Coordinates `json:"coordinates"`
}

type CertificationRequest struct {
	Type              string    `json:"type" binding:"required"`
	Authority         string    `json:"authority" binding:"required"`
	IssueDate         time.Time `json:"issue_date" binding:"required"`
	ExpiryDate        time.Time `json:"expiry_date" binding:"required"`
	CertificateNumber *string   `json:"certificate_number"`
}

type SafetyFeatureRequest struct {
	Feature     string  `json:"feature" binding:"required"`
	Description *string `json:"description"`
}

// parseSearchParams validates the raw query string into SearchParams,
// collecting per-field messages so the client can correct its input.
func (ctrl *EstablishmentController) parseSearchParams(c *gin.Context) (model.SearchParams, map[string]string) {
	fields := make(map[string]string)

	params := model.SearchParams{
		Query:        c.Query("query"),
		BusinessType: c.DefaultQuery("businessType", "all"),
		Grade:        c.DefaultQuery("grade", "all"),
		City:         c.Query("city"),
		Limit:        ctrl.defaultPageSize,
	}

	if params.Query == "" {
		fields["query"] = "query is required"
	}
	if params.BusinessType != "all" && !model.ValidBusinessType(params.BusinessType) {
		fields["businessType"] = "must be one of: all, restaurant, hotel"
	}
	if params.Grade != "all" && !model.ValidGrade(params.Grade) {
		fields["grade"] = "must be one of: all, A, B, C"
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["limit"] = "must be an integer"
		case limit < 1 || limit > ctrl.maxPageSize:
			fields["limit"] = "must be between 1 and " + strconv.Itoa(ctrl.maxPageSize)
		default:
			params.Limit = limit
		}
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["offset"] = "must be an integer"
		case offset < 0:
			fields["offset"] = "must not be negative"
		default:
			params.Offset = offset
		}
	}

	return params, fields
}

func (ctrl *EstablishmentController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	params, fields := ctrl.parseSearchParams(c)
	if len(fields) > 0 {
		log.Warn("Invalid search parameters", map[string]interface{}{
			"fields": fields,
		})
		errors.RespondWithValidationError(c, fields)
		return
	}

	result, err := ctrl.establishmentService.Search(params)
	if err != nil {
		log.Error("Search failed", err, map[string]interface{}{
			"query": params.Query,
		})
		errors.InternalError(c, "")
		return
	}

	log.Info("Search completed", map[string]interface{}{
		"query": params.Query,
		"total": result.Total,
	})

	c.JSON(http.StatusOK, result)
}

func (ctrl *EstablishmentController) Suggestions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	suggestions, err := ctrl.establishmentService.Suggest(c.Query("q"))
	if err != nil {
		log.Error("Failed to compute suggestions", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

func (ctrl *EstablishmentController) GetByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	establishment, err := ctrl.establishmentService.GetEstablishmentByID(id)
	if err != nil {
		if err == service.ErrEstablishmentNotFound {
			log.Warn("Establishment not found", map[string]interface{}{
				"establishment_id": id,
			})
			errors.NotFound(c, errors.EstablishmentNotFound, "Establishment not found")
			return
		}
		log.Error("Failed to fetch establishment", err, map[string]interface{}{
			"establishment_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, establishment)
}

func (ctrl *EstablishmentController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req EstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid establishment creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	if !model.ValidBusinessType(req.BusinessType) {
		errors.BadRequest(c, errors.EstablishmentInvalidType, "business_type must be restaurant or hotel")
		return
	}

	created, err := ctrl.establishmentService.CreateEstablishment(service.CreateEstablishmentInput{
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		BusinessType:  model.BusinessType(req.BusinessType),
		Cuisine:       req.Cuisine,
		LicenseNumber: req.LicenseNumber,
		Coordinates:   req.Coordinates,
	})
	if err != nil {
		log.Error("Failed to create establishment", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.InternalError(c, "")
		return
	}

	log.Info("Establishment created", map[string]interface{}{
		"establishment_id": created.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Establishment created successfully",
		"establishment": created,
	})
}

func (ctrl *EstablishmentController) AddCertification(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid certification request", map[string]interface{}{
			"establishment_id": id,
			"error":            err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	created, err := ctrl.establishmentService.AddCertification(id, service.CreateCertificationInput{
		Type:              req.Type,
		Authority:         req.Authority,
		IssueDate:         req.IssueDate,
		ExpiryDate:        req.ExpiryDate,
		CertificateNumber: req.CertificateNumber,
	})
	if err != nil {
		if err == service.ErrEstablishmentNotFound {
			errors.NotFound(c, errors.EstablishmentNotFound, "Establishment not found")
			return
		}
		log.Error("Failed to create certification", err, map[string]interface{}{
			"establishment_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Certification created successfully",
		"certification": created,
	})
}

func (ctrl *EstablishmentController) AddSafetyFeature(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req SafetyFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid safety feature request", map[string]interface{}{
			"establishment_id": id,
			"error":            err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	created, err := ctrl.establishmentService.AddSafetyFeature(id, service.CreateSafetyFeatureInput{
		Feature:     req.Feature,
		Description: req.Description,
	})
	if err != nil {
		if err == service.ErrEstablishmentNotFound {
			errors.NotFound(c, errors.EstablishmentNotFound, "Establishment not found")
			return
		}
		log.Error("Failed to create safety feature", err, map[string]interface{}{
			"establishment_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Safety feature created successfully",
		"safety_feature": created,
	})
}
