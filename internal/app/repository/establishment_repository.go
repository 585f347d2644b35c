package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/internal/search"
)

type EstablishmentRepository interface {
	// Create stores the establishment under a fresh identifier and rebuilds
	// the fuzzy index before releasing the write lock, so readers never see
	// an index missing the new entry.
	Create(establishment *model.Establishment) error
	FindByID(id string) (*model.Establishment, error)
	// FindAll returns every establishment ordered by creation time, then ID.
	FindAll() ([]model.Establishment, error)
}

type establishmentRepository struct {
	store *Store
	index search.Index
}

func NewEstablishmentRepository(store *Store, index search.Index) EstablishmentRepository {
	return &establishmentRepository{store: store, index: index}
}

func (r *establishmentRepository) Create(establishment *model.Establishment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	establishment.ID = uuid.NewString()
	establishment.CreatedAt = time.Now()
	r.store.establishments[establishment.ID] = *establishment

	// Full synchronous rebuild on every mutation: a just-created
	// establishment must be searchable immediately.
	r.index.Rebuild(snapshotEstablishments(r.store))
	return nil
}

func (r *establishmentRepository) FindByID(id string) (*model.Establishment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	establishment, ok := r.store.establishments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &establishment, nil
}

func (r *establishmentRepository) FindAll() ([]model.Establishment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshotEstablishments(r.store), nil
}

// snapshotEstablishments copies the collection in creation order. Callers
// must hold the store lock.
func snapshotEstablishments(store *Store) []model.Establishment {
	establishments := make([]model.Establishment, 0, len(store.establishments))
	for _, est := range store.establishments {
		establishments = append(establishments, est)
	}
	sort.Slice(establishments, func(i, j int) bool {
		if !establishments[i].CreatedAt.Equal(establishments[j].CreatedAt) {
			return establishments[i].CreatedAt.Before(establishments[j].CreatedAt)
		}
		return establishments[i].ID < establishments[j].ID
	})
	return establishments
}
