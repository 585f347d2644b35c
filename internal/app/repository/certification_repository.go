package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

type CertificationRepository interface {
	Create(certification *model.Certification) error
	// FindByEstablishmentID returns every certification for the
	// establishment, expired ones included.
	FindByEstablishmentID(establishmentID string) ([]model.Certification, error)
	// FindExpiringWithin returns certifications whose expiry date falls
	// between now and now+window, ordered by expiry date ascending.
	FindExpiringWithin(now time.Time, window time.Duration) ([]model.Certification, error)
}

type certificationRepository struct {
	store *Store
}

func NewCertificationRepository(store *Store) CertificationRepository {
	return &certificationRepository{store: store}
}

func (r *certificationRepository) Create(certification *model.Certification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	certification.ID = uuid.NewString()
	r.store.certifications[certification.ID] = *certification
	return nil
}

func (r *certificationRepository) FindByEstablishmentID(establishmentID string) ([]model.Certification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	certifications := make([]model.Certification, 0)
	for _, cert := range r.store.certifications {
		if cert.EstablishmentID == establishmentID {
			certifications = append(certifications, cert)
		}
	}
	sort.Slice(certifications, func(i, j int) bool {
		return certifications[i].ID < certifications[j].ID
	})
	return certifications, nil
}

func (r *certificationRepository) FindExpiringWithin(now time.Time, window time.Duration) ([]model.Certification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	deadline := now.Add(window)
	certifications := make([]model.Certification, 0)
	for _, cert := range r.store.certifications {
		if cert.ExpiryDate.After(now) && !cert.ExpiryDate.After(deadline) {
			certifications = append(certifications, cert)
		}
	}
	sort.Slice(certifications, func(i, j int) bool {
		return certifications[i].ExpiryDate.Before(certifications[j].ExpiryDate)
	})
	return certifications, nil
}
