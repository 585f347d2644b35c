package repository

import (
	"errors"
	"sync"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

// ErrNotFound is returned by lookups with no matching record. A missing key
// is an expected outcome, never a panic.
var ErrNotFound = errors.New("record not found")

// Store owns the five in-memory entity collections. All repositories share
// its read-write lock, so one writer or many readers touch the maps at a
// time. There is no persistence behind it; fixtures or create calls are the
// only sources of data.
type Store struct {
	mu sync.RWMutex

	establishments map[string]model.Establishment
	inspections    map[string]model.Inspection
	violations     map[string]model.Violation
	certifications map[string]model.Certification
	safetyFeatures map[string]model.SafetyFeature
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		establishments: make(map[string]model.Establishment),
		inspections:    make(map[string]model.Inspection),
		violations:     make(map[string]model.Violation),
		certifications: make(map[string]model.Certification),
		safetyFeatures: make(map[string]model.SafetyFeature),
	}
}

// Counts reports collection sizes, for startup logging and health checks.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"establishments":  len(s.establishments),
		"inspections":     len(s.inspections),
		"violations":      len(s.violations),
		"certifications":  len(s.certifications),
		"safety_features": len(s.safetyFeatures),
	}
}
