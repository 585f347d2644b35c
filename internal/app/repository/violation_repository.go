package repository

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

type ViolationRepository interface {
	Create(violation *model.Violation) error
	FindByInspectionID(inspectionID string) ([]model.Violation, error)
}

type violationRepository struct {
	store *Store
}

func NewViolationRepository(store *Store) ViolationRepository {
	return &violationRepository{store: store}
}

func (r *violationRepository) Create(violation *model.Violation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	violation.ID = uuid.NewString()
	r.store.violations[violation.ID] = *violation
	return nil
}

func (r *violationRepository) FindByInspectionID(inspectionID string) ([]model.Violation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	violations := make([]model.Violation, 0)
	for _, v := range r.store.violations {
		if v.InspectionID == inspectionID {
			violations = append(violations, v)
		}
	}
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].ID < violations[j].ID
	})
	return violations, nil
}
