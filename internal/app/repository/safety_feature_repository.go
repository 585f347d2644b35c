package repository

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

type SafetyFeatureRepository interface {
	Create(feature *model.SafetyFeature) error
	FindByEstablishmentID(establishmentID string) ([]model.SafetyFeature, error)
}

type safetyFeatureRepository struct {
	store *Store
}

func NewSafetyFeatureRepository(store *Store) SafetyFeatureRepository {
	return &safetyFeatureRepository{store: store}
}

func (r *safetyFeatureRepository) Create(feature *model.SafetyFeature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	feature.ID = uuid.NewString()
	r.store.safetyFeatures[feature.ID] = *feature
	return nil
}

func (r *safetyFeatureRepository) FindByEstablishmentID(establishmentID string) ([]model.SafetyFeature, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	features := make([]model.SafetyFeature, 0)
	for _, sf := range r.store.safetyFeatures {
		if sf.EstablishmentID == establishmentID {
			features = append(features, sf)
		}
	}
	sort.Slice(features, func(i, j int) bool {
		return features[i].ID < features[j].ID
	})
	return features, nil
}
