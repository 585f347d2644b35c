package service

import (
	"errors"
	"time"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/pkg/logger"
)

var ErrInspectionNotFound = errors.New("inspection not found")

type CreateInspectionInput struct {
	EstablishmentID string
	InspectionDate  time.Time
	Score           int
	Grade           model.Grade
	InspectorName   string
	InspectorID     string
	Notes           *string
}

type CreateViolationInput struct {
	Code         string
	Description  string
	Severity     model.Severity
	Points       int
	Resolved     bool
	ResolvedDate *time.Time
	Category     string
}

type InspectionService interface {
	// GetInspectionsByEstablishmentID returns the establishment's inspection
	// history, newest first, each with its violations. An unknown
	// establishment yields an empty list, not an error.
	GetInspectionsByEstablishmentID(establishmentID string) ([]model.InspectionWithViolations, error)
	GetInspectionByID(id string) (*model.InspectionWithViolations, error)
	CreateInspection(input CreateInspectionInput) (*model.Inspection, error)
	AddViolation(inspectionID string, input CreateViolationInput) (*model.Violation, error)
}

type inspectionService struct {
	establishmentRepo repository.EstablishmentRepository
	inspectionRepo    repository.InspectionRepository
	violationRepo     repository.ViolationRepository
}

func NewInspectionService(
	establishmentRepo repository.EstablishmentRepository,
	inspectionRepo repository.InspectionRepository,
	violationRepo repository.ViolationRepository,
) InspectionService {
	return &inspectionService{
		establishmentRepo: establishmentRepo,
		inspectionRepo:    inspectionRepo,
		violationRepo:     violationRepo,
	}
}

func (s *inspectionService) GetInspectionsByEstablishmentID(establishmentID string) ([]model.InspectionWithViolations, error) {
	logger.Debug("Fetching inspections for establishment", map[string]interface{}{
		"establishment_id": establishmentID,
	})

	establishment, err := s.establishmentRepo.FindByID(establishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []model.InspectionWithViolations{}, nil
		}
		return nil, err
	}

	inspections, err := s.inspectionRepo.FindByEstablishmentID(establishmentID)
	if err != nil {
		logger.Error("Failed to fetch inspections", err, map[string]interface{}{
			"establishment_id": establishmentID,
		})
		return nil, err
	}

	history := make([]model.InspectionWithViolations, 0, len(inspections))
	for _, insp := range inspections {
		violations, err := s.violationRepo.FindByInspectionID(insp.ID)
		if err != nil {
			return nil, err
		}
		history = append(history, model.InspectionWithViolations{
			Inspection:    insp,
			Violations:    violations,
			Establishment: *establishment,
		})
	}

	logger.Info("Inspections fetched", map[string]interface{}{
		"establishment_id": establishmentID,
		"count":            len(history),
	})
	return history, nil
}

func (s *inspectionService) GetInspectionByID(id string) (*model.InspectionWithViolations, error) {
	logger.Debug("Fetching inspection by ID", map[string]interface{}{
		"inspection_id": id,
	})

	inspection, err := s.inspectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Inspection not found", map[string]interface{}{
				"inspection_id": id,
			})
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}

	// A dangling parent reference is treated as not-found rather than a
	// partially joined record.
	establishment, err := s.establishmentRepo.FindByID(inspection.EstablishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Inspection has no parent establishment", map[string]interface{}{
				"inspection_id":    id,
				"establishment_id": inspection.EstablishmentID,
			})
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}

	violations, err := s.violationRepo.FindByInspectionID(id)
	if err != nil {
		return nil, err
	}

	return &model.InspectionWithViolations{
		Inspection:    *inspection,
		Violations:    violations,
		Establishment: *establishment,
	}, nil
}

func (s *inspectionService) CreateInspection(input CreateInspectionInput) (*model.Inspection, error) {
	logger.Info("Creating inspection", map[string]interface{}{
		"establishment_id": input.EstablishmentID,
		"score":            input.Score,
		"grade":            input.Grade,
	})

	// The store does not enforce foreign keys; this service must not
	// create orphans.
	if _, err := s.establishmentRepo.FindByID(input.EstablishmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEstablishmentNotFound
		}
		return nil, err
	}

	inspection := &model.Inspection{
		EstablishmentID: input.EstablishmentID,
		InspectionDate:  input.InspectionDate,
		Score:           input.Score,
		Grade:           input.Grade,
		InspectorName:   input.InspectorName,
		InspectorID:     input.InspectorID,
		Notes:           input.Notes,
	}
	if err := s.inspectionRepo.Create(inspection); err != nil {
		logger.Error("Failed to create inspection", err, map[string]interface{}{
			"establishment_id": input.EstablishmentID,
		})
		return nil, err
	}

	logger.Info("Inspection created", map[string]interface{}{
		"inspection_id":    inspection.ID,
		"establishment_id": inspection.EstablishmentID,
	})
	return inspection, nil
}

func (s *inspectionService) AddViolation(inspectionID string, input CreateViolationInput) (*model.Violation, error) {
	if _, err := s.inspectionRepo.FindByID(inspectionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}

	violation := &model.Violation{
		InspectionID: inspectionID,
		Code:         input.Code,
		Description:  input.Description,
		Severity:     input.Severity,
		Points:       input.Points,
		Resolved:     input.Resolved,
		ResolvedDate: input.ResolvedDate,
		Category:     input.Category,
	}
	if err := s.violationRepo.Create(violation); err != nil {
		logger.Error("Failed to create violation", err, map[string]interface{}{
			"inspection_id": inspectionID,
		})
		return nil, err
	}

	logger.Info("Violation created", map[string]interface{}{
		"violation_id":  violation.ID,
		"inspection_id": inspectionID,
	})
	return violation, nil
}
