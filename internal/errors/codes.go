package errors

// Error code constants returned in API error responses.
// Format: CATEGORY_SPECIFIC_DETAIL; clients map these to display messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // malformed identifier
	ValidationInvalidEnum  = "VALIDATION_INVALID_ENUM"  // value outside allowed set
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // number out of range
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // generic missing record

	// ==================== Establishments (ESTABLISHMENT_) ====================
	EstablishmentNotFound    = "ESTABLISHMENT_NOT_FOUND"     // no establishment for id
	EstablishmentInvalidType = "ESTABLISHMENT_INVALID_TYPE"  // businessType outside restaurant/hotel

	// ==================== Inspections (INSPECTION_) ====================
	InspectionNotFound     = "INSPECTION_NOT_FOUND"     // no inspection for id
	InspectionInvalidGrade = "INSPECTION_INVALID_GRADE" // grade outside A/B/C

	// ==================== Violations (VIOLATION_) ====================
	ViolationInvalidSeverity = "VIOLATION_INVALID_SEVERITY" // severity outside critical/major/minor

	// ==================== Reports (REPORT_) ====================
	ReportBuildFailed = "REPORT_BUILD_FAILED" // xlsx generation failure

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // unexpected failure
)
