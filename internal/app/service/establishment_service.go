package service

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/internal/search"
	"github.com/jhpark/safedine-backend/pkg/logger"
)

var ErrEstablishmentNotFound = errors.New("establishment not found")

// CreateEstablishmentInput carries validated fields for a new establishment.
type CreateEstablishmentInput struct {
	Name          string
	Address       string
	City          string
	State         string
	ZipCode       string
	BusinessType  model.BusinessType
	Cuisine       *string
	LicenseNumber *string
	Coordinates   *model.Coordinates
}

type CreateCertificationInput struct {
	Type              string
	Authority         string
	IssueDate         time.Time
	ExpiryDate        time.Time
	CertificateNumber *string
}

type CreateSafetyFeatureInput struct {
	Feature     string
	Description *string
}

type EstablishmentService interface {
	// Search runs the filter/join/sort/paginate pipeline over the full
	// corpus. Params must already be validated.
	Search(params model.SearchParams) (*model.SearchResult, error)
	GetEstablishmentByID(id string) (*model.EstablishmentWithDetails, error)
	ListAllWithDetails() ([]model.EstablishmentWithDetails, error)
	CreateEstablishment(input CreateEstablishmentInput) (*model.Establishment, error)
	Suggest(query string) ([]model.Suggestion, error)
	AddCertification(establishmentID string, input CreateCertificationInput) (*model.Certification, error)
	AddSafetyFeature(establishmentID string, input CreateSafetyFeatureInput) (*model.SafetyFeature, error)
	ExpiringCertifications(window time.Duration) ([]model.Certification, error)
}

// EstablishmentServiceConfig tunes the suggestion endpoint.
type EstablishmentServiceConfig struct {
	MinQueryLength  int // shortest query the suggestion engine forwards to the index
	SuggestionLimit int // maximum suggestions returned
}

type establishmentService struct {
	establishmentRepo repository.EstablishmentRepository
	inspectionRepo    repository.InspectionRepository
	violationRepo     repository.ViolationRepository
	certificationRepo repository.CertificationRepository
	safetyFeatureRepo repository.SafetyFeatureRepository
	index             search.Index
	cfg               EstablishmentServiceConfig
}

func NewEstablishmentService(
	establishmentRepo repository.EstablishmentRepository,
	inspectionRepo repository.InspectionRepository,
	violationRepo repository.ViolationRepository,
	certificationRepo repository.CertificationRepository,
	safetyFeatureRepo repository.SafetyFeatureRepository,
	index search.Index,
	cfg EstablishmentServiceConfig,
) EstablishmentService {
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = 2
	}
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = 5
	}
	return &establishmentService{
		establishmentRepo: establishmentRepo,
		inspectionRepo:    inspectionRepo,
		violationRepo:     violationRepo,
		certificationRepo: certificationRepo,
		safetyFeatureRepo: safetyFeatureRepo,
		index:             index,
		cfg:               cfg,
	}
}

// calculateStats derives the per-establishment aggregates from current store
// state. ViolationCount covers only the latest inspection, not lifetime.
func (s *establishmentService) calculateStats(establishmentID string) (model.Stats, error) {
	inspections, err := s.inspectionRepo.FindByEstablishmentID(establishmentID)
	if err != nil {
		return model.Stats{}, err
	}

	stats := model.Stats{TotalInspections: len(inspections)}
	if len(inspections) == 0 {
		return stats, nil
	}

	sum := 0
	for _, insp := range inspections {
		sum += insp.Score
	}
	stats.AvgScore = int(math.Round(float64(sum) / float64(len(inspections))))

	latest := inspections[0]
	violations, err := s.violationRepo.FindByInspectionID(latest.ID)
	if err != nil {
		return model.Stats{}, err
	}
	stats.ViolationCount = len(violations)
	stats.DaysSinceInspection = int(math.Floor(time.Since(latest.InspectionDate).Hours() / 24))
	return stats, nil
}

// withDetails assembles the fully joined view: latest inspection and its
// violations, every certification and safety feature, and the stats block.
// Repeated calls against unchanged store state yield identical output.
func (s *establishmentService) withDetails(establishment model.Establishment) (*model.EstablishmentWithDetails, error) {
	inspections, err := s.inspectionRepo.FindByEstablishmentID(establishment.ID)
	if err != nil {
		return nil, err
	}

	var latest *model.Inspection
	violations := make([]model.Violation, 0)
	if len(inspections) > 0 {
		latest = &inspections[0]
		violations, err = s.violationRepo.FindByInspectionID(latest.ID)
		if err != nil {
			return nil, err
		}
	}

	certifications, err := s.certificationRepo.FindByEstablishmentID(establishment.ID)
	if err != nil {
		return nil, err
	}
	safetyFeatures, err := s.safetyFeatureRepo.FindByEstablishmentID(establishment.ID)
	if err != nil {
		return nil, err
	}
	stats, err := s.calculateStats(establishment.ID)
	if err != nil {
		return nil, err
	}

	return &model.EstablishmentWithDetails{
		Establishment:    establishment,
		LatestInspection: latest,
		Violations:       violations,
		Certifications:   certifications,
		SafetyFeatures:   safetyFeatures,
		Stats:            stats,
	}, nil
}

func (s *establishmentService) Search(params model.SearchParams) (*model.SearchResult, error) {
	logger.Debug("Searching establishments", map[string]interface{}{
		"query":         params.Query,
		"business_type": params.BusinessType,
		"grade":         params.Grade,
		"city":          params.City,
		"limit":         params.Limit,
		"offset":        params.Offset,
	})

	candidates, err := s.establishmentRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list establishments for search", err)
		return nil, err
	}

	// Filter by business type
	if params.BusinessType != "all" {
		filtered := candidates[:0]
		for _, est := range candidates {
			if string(est.BusinessType) == params.BusinessType {
				filtered = append(filtered, est)
			}
		}
		candidates = filtered
	}

	// Filter by city (case-insensitive substring)
	if params.City != "" {
		city := strings.ToLower(params.City)
		filtered := candidates[:0]
		for _, est := range candidates {
			if strings.Contains(strings.ToLower(est.City), city) {
				filtered = append(filtered, est)
			}
		}
		candidates = filtered
	}

	// Intersect with the fuzzy match set. The index ranking is ignored here;
	// results are re-sorted by health score below.
	if params.Query != "" {
		matchIDs := make(map[string]bool)
		for _, m := range s.index.Search(params.Query) {
			matchIDs[m.ID] = true
		}
		filtered := candidates[:0]
		for _, est := range candidates {
			if matchIDs[est.ID] {
				filtered = append(filtered, est)
			}
		}
		candidates = filtered
	}

	detailed := make([]model.EstablishmentWithDetails, 0, len(candidates))
	for _, est := range candidates {
		details, err := s.withDetails(est)
		if err != nil {
			logger.Error("Failed to join establishment details", err, map[string]interface{}{
				"establishment_id": est.ID,
			})
			return nil, err
		}
		detailed = append(detailed, *details)
	}

	// Filter by grade; establishments with no inspection never pass an
	// active grade filter.
	if params.Grade != "all" {
		filtered := detailed[:0]
		for _, est := range detailed {
			if est.LatestInspection != nil && string(est.LatestInspection.Grade) == params.Grade {
				filtered = append(filtered, est)
			}
		}
		detailed = filtered
	}

	// Sort by latest health score, high to low. No inspection counts as 0.
	sort.SliceStable(detailed, func(i, j int) bool {
		return latestScore(detailed[i]) > latestScore(detailed[j])
	})

	total := len(detailed)
	page := paginate(detailed, params.Offset, params.Limit)

	logger.Info("Establishment search completed", map[string]interface{}{
		"query": params.Query,
		"total": total,
		"count": len(page),
	})

	return &model.SearchResult{Establishments: page, Total: total}, nil
}

func latestScore(est model.EstablishmentWithDetails) int {
	if est.LatestInspection == nil {
		return 0
	}
	return est.LatestInspection.Score
}

func paginate(detailed []model.EstablishmentWithDetails, offset, limit int) []model.EstablishmentWithDetails {
	if offset >= len(detailed) {
		return []model.EstablishmentWithDetails{}
	}
	end := offset + limit
	if end > len(detailed) {
		end = len(detailed)
	}
	return detailed[offset:end]
}

func (s *establishmentService) GetEstablishmentByID(id string) (*model.EstablishmentWithDetails, error) {
	logger.Debug("Fetching establishment by ID", map[string]interface{}{
		"establishment_id": id,
	})

	establishment, err := s.establishmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Establishment not found", map[string]interface{}{
				"establishment_id": id,
			})
			return nil, ErrEstablishmentNotFound
		}
		logger.Error("Failed to fetch establishment", err, map[string]interface{}{
			"establishment_id": id,
		})
		return nil, err
	}

	return s.withDetails(*establishment)
}

func (s *establishmentService) ListAllWithDetails() ([]model.EstablishmentWithDetails, error) {
	establishments, err := s.establishmentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	detailed := make([]model.EstablishmentWithDetails, 0, len(establishments))
	for _, est := range establishments {
		details, err := s.withDetails(est)
		if err != nil {
			return nil, err
		}
		detailed = append(detailed, *details)
	}
	return detailed, nil
}

func (s *establishmentService) CreateEstablishment(input CreateEstablishmentInput) (*model.Establishment, error) {
	logger.Info("Creating establishment", map[string]interface{}{
		"name":          input.Name,
		"business_type": input.BusinessType,
	})

	cuisine := input.Cuisine
	if input.BusinessType != model.BusinessTypeRestaurant {
		// Cuisine is meaningful only for restaurants.
		cuisine = nil
	}

	establishment := &model.Establishment{
		Name:          input.Name,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		BusinessType:  input.BusinessType,
		Cuisine:       cuisine,
		LicenseNumber: input.LicenseNumber,
		Coordinates:   input.Coordinates,
	}
	if err := s.establishmentRepo.Create(establishment); err != nil {
		logger.Error("Failed to create establishment", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Establishment created", map[string]interface{}{
		"establishment_id": establishment.ID,
		"name":             establishment.Name,
	})
	return establishment, nil
}

func (s *establishmentService) Suggest(query string) ([]model.Suggestion, error) {
	suggestions := make([]model.Suggestion, 0, s.cfg.SuggestionLimit)
	if utf8.RuneCountInString(strings.TrimSpace(query)) < s.cfg.MinQueryLength {
		return suggestions, nil
	}

	// Unlike Search, suggestions keep the index's own ranking.
	for _, m := range s.index.Search(query) {
		establishment, err := s.establishmentRepo.FindByID(m.ID)
		if err != nil {
			// Index can briefly reference a record a concurrent writer is
			// replacing; skip rather than fail the whole suggestion list.
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Name:    establishment.Name,
			Type:    string(establishment.BusinessType),
			Address: establishment.Address + ", " + establishment.City,
		})
		if len(suggestions) == s.cfg.SuggestionLimit {
			break
		}
	}

	logger.Debug("Suggestions computed", map[string]interface{}{
		"query": query,
		"count": len(suggestions),
	})
	return suggestions, nil
}

func (s *establishmentService) AddCertification(establishmentID string, input CreateCertificationInput) (*model.Certification, error) {
	if _, err := s.establishmentRepo.FindByID(establishmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEstablishmentNotFound
		}
		return nil, err
	}

	certification := &model.Certification{
		EstablishmentID:   establishmentID,
		Type:              input.Type,
		Authority:         input.Authority,
		IssueDate:         input.IssueDate,
		ExpiryDate:        input.ExpiryDate,
		CertificateNumber: input.CertificateNumber,
	}
	if err := s.certificationRepo.Create(certification); err != nil {
		logger.Error("Failed to create certification", err, map[string]interface{}{
			"establishment_id": establishmentID,
		})
		return nil, err
	}

	logger.Info("Certification created", map[string]interface{}{
		"certification_id": certification.ID,
		"establishment_id": establishmentID,
	})
	return certification, nil
}

func (s *establishmentService) AddSafetyFeature(establishmentID string, input CreateSafetyFeatureInput) (*model.SafetyFeature, error) {
	if _, err := s.establishmentRepo.FindByID(establishmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEstablishmentNotFound
		}
		return nil, err
	}

	feature := &model.SafetyFeature{
		EstablishmentID: establishmentID,
		Feature:         input.Feature,
		Description:     input.Description,
	}
	if err := s.safetyFeatureRepo.Create(feature); err != nil {
		logger.Error("Failed to create safety feature", err, map[string]interface{}{
			"establishment_id": establishmentID,
		})
		return nil, err
	}

	logger.Info("Safety feature created", map[string]interface{}{
		"safety_feature_id": feature.ID,
		"establishment_id":  establishmentID,
	})
	return feature, nil
}

func (s *establishmentService) ExpiringCertifications(window time.Duration) ([]model.Certification, error) {
	return s.certificationRepo.FindExpiringWithin(time.Now(), window)
}
