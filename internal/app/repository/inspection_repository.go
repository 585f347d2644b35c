package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

type InspectionRepository interface {
	Create(inspection *model.Inspection) error
	FindByID(id string) (*model.Inspection, error)
	// FindByEstablishmentID returns the establishment's inspections ordered
	// by inspection date descending, so index 0 is the latest.
	FindByEstablishmentID(establishmentID string) ([]model.Inspection, error)
}

type inspectionRepository struct {
	store *Store
}

func NewInspectionRepository(store *Store) InspectionRepository {
	return &inspectionRepository{store: store}
}

func (r *inspectionRepository) Create(inspection *model.Inspection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	inspection.ID = uuid.NewString()
	inspection.CreatedAt = time.Now()
	r.store.inspections[inspection.ID] = *inspection
	return nil
}

func (r *inspectionRepository) FindByID(id string) (*model.Inspection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	inspection, ok := r.store.inspections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inspection, nil
}

func (r *inspectionRepository) FindByEstablishmentID(establishmentID string) ([]model.Inspection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	inspections := make([]model.Inspection, 0)
	for _, insp := range r.store.inspections {
		if insp.EstablishmentID == establishmentID {
			inspections = append(inspections, insp)
		}
	}
	// Deterministic order: newest first, identifier breaks date ties.
	sort.Slice(inspections, func(i, j int) bool {
		if !inspections[i].InspectionDate.Equal(inspections[j].InspectionDate) {
			return inspections[i].InspectionDate.After(inspections[j].InspectionDate)
		}
		return inspections[i].ID < inspections[j].ID
	})
	return inspections, nil
}
