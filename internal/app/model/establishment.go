package model

import "time"

// BusinessType distinguishes the two kinds of inspected establishments.
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeHotel      BusinessType = "hotel"
)

// ValidBusinessType reports whether t is one of the known business types.
func ValidBusinessType(t string) bool {
	return t == string(BusinessTypeRestaurant) || t == string(BusinessTypeHotel)
}

// Coordinates is an optional WGS84 position for an establishment.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Establishment is a restaurant or hotel subject to health inspection.
// BusinessType is immutable once set; Cuisine is meaningful only for restaurants.
type Establishment struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	State         string       `json:"state"`
	ZipCode       string       `json:"zip_code"`
	BusinessType  BusinessType `json:"business_type"`
	Cuisine       *string      `json:"cuisine"`
	LicenseNumber *string      `json:"license_number"`
	Coordinates   *Coordinates `json:"coordinates"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Stats holds per-establishment aggregates derived from inspections and
// violations. ViolationCount covers the latest inspection only, not lifetime.
type Stats struct {
	TotalInspections    int `json:"total_inspections"`
	AvgScore            int `json:"avg_score"`
	ViolationCount      int `json:"violation_count"`
	DaysSinceInspection int `json:"days_since_inspection"`
}

// EstablishmentWithDetails is the fully joined representation used by all
// read endpoints: the establishment, its latest inspection with that
// inspection's violations, all certifications and safety features, and stats.
type EstablishmentWithDetails struct {
	Establishment
	LatestInspection *Inspection     `json:"latest_inspection,omitempty"`
	Violations       []Violation     `json:"violations"`
	Certifications   []Certification `json:"certifications"`
	SafetyFeatures   []SafetyFeature `json:"safety_features"`
	Stats            Stats           `json:"stats"`
}
