package model

import "time"

// Grade is the single-letter outcome of an inspection. It is entered at
// creation time and intentionally not cross-checked against the score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// ValidGrade reports whether g is one of the known letter grades.
func ValidGrade(g string) bool {
	return g == string(GradeA) || g == string(GradeB) || g == string(GradeC)
}

// Inspection is a dated health-compliance evaluation of one establishment.
type Inspection struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	InspectionDate  time.Time `json:"inspection_date"`
	Score           int       `json:"score"`
	Grade           Grade     `json:"grade"`
	InspectorName   string    `json:"inspector_name"`
	InspectorID     string    `json:"inspector_id"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// InspectionWithViolations is the inspection detail view: the inspection,
// its violations, and the establishment it belongs to.
type InspectionWithViolations struct {
	Inspection
	Violations    []Violation   `json:"violations"`
	Establishment Establishment `json:"establishment"`
}
