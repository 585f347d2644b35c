package model

import "time"

// Certification is a safety or compliance certificate held by an
// establishment. Expired certificates are still returned by read paths;
// expiry is reported, never enforced.
type Certification struct {
	ID                string    `json:"id"`
	EstablishmentID   string    `json:"establishment_id"`
	Type              string    `json:"type"`
	Authority         string    `json:"authority"`
	IssueDate         time.Time `json:"issue_date"`
	ExpiryDate        time.Time `json:"expiry_date"`
	CertificateNumber *string   `json:"certificate_number"`
}
