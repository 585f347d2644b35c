package repository

import (
	"time"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

func strPtr(s string) *string { return &s }

func datePtr(t time.Time) *time.Time { return &t }

// SeedFixtures loads the sample registry used by local development and
// tests. Identifiers are fixed so API consumers and tests can reference
// them directly. The caller is responsible for rebuilding the fuzzy index
// afterwards.
func SeedFixtures(store *Store) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()

	establishments := []model.Establishment{
		{
			ID:            "est-1",
			Name:          "Mario's Italian Restaurant",
			Address:       "123 Main Street",
			City:          "New York",
			State:         "NY",
			ZipCode:       "10001",
			BusinessType:  model.BusinessTypeRestaurant,
			Cuisine:       strPtr("Italian"),
			LicenseNumber: strPtr("NYC-REST-123456"),
			Coordinates:   &model.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
			CreatedAt:     now,
		},
		{
			ID:            "est-2",
			Name:          "Grand Plaza Hotel",
			Address:       "456 Broadway",
			City:          "New York",
			State:         "NY",
			ZipCode:       "10013",
			BusinessType:  model.BusinessTypeHotel,
			Cuisine:       nil,
			LicenseNumber: strPtr("NYC-HTL-789012"),
			Coordinates:   &model.Coordinates{Latitude: 40.7183, Longitude: -74.0095},
			CreatedAt:     now.Add(time.Millisecond),
		},
		{
			ID:            "est-3",
			Name:          "Sunrise Cafe",
			Address:       "789 Brooklyn Ave",
			City:          "Brooklyn",
			State:         "NY",
			ZipCode:       "11201",
			BusinessType:  model.BusinessTypeRestaurant,
			Cuisine:       strPtr("American"),
			LicenseNumber: strPtr("NYC-REST-345678"),
			Coordinates:   &model.Coordinates{Latitude: 40.6892, Longitude: -73.9442},
			CreatedAt:     now.Add(2 * time.Millisecond),
		},
	}
	for _, est := range establishments {
		store.establishments[est.ID] = est
	}

	inspections := []model.Inspection{
		{
			ID:              "insp-1",
			EstablishmentID: "est-1",
			InspectionDate:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Score:           95,
			Grade:           model.GradeA,
			InspectorName:   "Sarah Johnson",
			InspectorID:     "INS-4521",
			Notes:           strPtr("Overall excellent compliance with food safety regulations. Staff demonstrated good knowledge of proper procedures."),
			CreatedAt:       now,
		},
		{
			ID:              "insp-2",
			EstablishmentID: "est-2",
			InspectionDate:  time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			Score:           98,
			Grade:           model.GradeA,
			InspectorName:   "Michael Chen",
			InspectorID:     "INS-3892",
			Notes:           strPtr("Exceptional standards maintained throughout facility. No violations found."),
			CreatedAt:       now,
		},
		{
			ID:              "insp-3",
			EstablishmentID: "est-3",
			InspectionDate:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Score:           82,
			Grade:           model.GradeB,
			InspectorName:   "Lisa Rodriguez",
			InspectorID:     "INS-2847",
			Notes:           strPtr("Several minor violations identified. Management cooperative in addressing issues."),
			CreatedAt:       now,
		},
	}
	for _, insp := range inspections {
		store.inspections[insp.ID] = insp
	}

	violations := []model.Violation{
		{
			ID:           "viol-1",
			InspectionID: "insp-1",
			Code:         "08A",
			Description:  "Hand washing sink not properly stocked with soap and disposable towels in kitchen prep area",
			Severity:     model.SeverityCritical,
			Points:       7,
			Resolved:     true,
			ResolvedDate: datePtr(time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)),
			Category:     "Personal Hygiene",
		},
		{
			ID:           "viol-2",
			InspectionID: "insp-1",
			Code:         "02A",
			Description:  "Refrigerated salad ingredients measured at 43°F, slightly above the required 41°F maximum",
			Severity:     model.SeverityMinor,
			Points:       5,
			Resolved:     true,
			ResolvedDate: datePtr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
			Category:     "Temperature Control",
		},
		{
			ID:           "viol-3",
			InspectionID: "insp-3",
			Code:         "04C",
			Description:  "Food contact surfaces not properly cleaned and sanitized",
			Severity:     model.SeverityMajor,
			Points:       10,
			Resolved:     true,
			ResolvedDate: datePtr(time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)),
			Category:     "Equipment & Facilities",
		},
	}
	for _, v := range violations {
		store.violations[v.ID] = v
	}

	certifications := []model.Certification{
		{
			ID:                "cert-1",
			EstablishmentID:   "est-2",
			Type:              "ISO 22000 Food Safety",
			Authority:         "International Standards Organization",
			IssueDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpiryDate:        time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			CertificateNumber: strPtr("ISO-22000-2024-001"),
		},
		{
			ID:                "cert-2",
			EstablishmentID:   "est-2",
			Type:              "COVID-19 Safety Protocols",
			Authority:         "NYC Department of Health",
			IssueDate:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ExpiryDate:        time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			CertificateNumber: strPtr("COVID-NYC-2024-789"),
		},
	}
	for _, cert := range certifications {
		store.certifications[cert.ID] = cert
	}

	safetyFeatures := []model.SafetyFeature{
		{
			ID:              "sf-1",
			EstablishmentID: "est-2",
			Feature:         "HEPA Air Filtration",
			Description:     strPtr("Advanced air filtration system installed throughout facility"),
		},
		{
			ID:              "sf-2",
			EstablishmentID: "est-2",
			Feature:         "Enhanced Sanitization",
			Description:     strPtr("Increased frequency cleaning protocols implemented"),
		},
		{
			ID:              "sf-3",
			EstablishmentID: "est-2",
			Feature:         "Contactless Check-in",
			Description:     strPtr("Mobile and kiosk check-in options available"),
		},
	}
	for _, sf := range safetyFeatures {
		store.safetyFeatures[sf.ID] = sf
	}
}
