package model

import "time"

// Severity classifies how serious a violation is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// ValidSeverity reports whether s is one of the known severities.
func ValidSeverity(s string) bool {
	return s == string(SeverityCritical) || s == string(SeverityMajor) || s == string(SeverityMinor)
}

// Violation is a compliance failure recorded during one inspection.
// Resolved is set at creation time; there is no later transition.
type Violation struct {
	ID           string     `json:"id"`
	InspectionID string     `json:"inspection_id"`
	Code         string     `json:"code"`
	Description  string     `json:"description"`
	Severity     Severity   `json:"severity"`
	Points       int        `json:"points"`
	Resolved     bool       `json:"resolved"`
	ResolvedDate *time.Time `json:"resolved_date"`
	Category     string     `json:"category"`
}
