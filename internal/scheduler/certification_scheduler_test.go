package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/internal/search"
)

func setupSchedulerTest(t *testing.T) service.EstablishmentService {
	store := repository.NewStore()
	repository.SeedFixtures(store)

	index := search.NewIndex(search.Config{})
	establishmentRepo := repository.NewEstablishmentRepository(store, index)
	inspectionRepo := repository.NewInspectionRepository(store)
	violationRepo := repository.NewViolationRepository(store)
	certificationRepo := repository.NewCertificationRepository(store)
	safetyFeatureRepo := repository.NewSafetyFeatureRepository(store)

	return service.NewEstablishmentService(
		establishmentRepo, inspectionRepo, violationRepo, certificationRepo, safetyFeatureRepo,
		index, service.EstablishmentServiceConfig{},
	)
}

func TestCertificationScheduler_StartStop(t *testing.T) {
	establishmentService := setupSchedulerTest(t)
	scheduler := NewCertificationScheduler(establishmentService, "0 9 * * *", 30)

	require.NoError(t, scheduler.Start())
	scheduler.Stop()
}

func TestCertificationScheduler_Start_InvalidCronSpec(t *testing.T) {
	establishmentService := setupSchedulerTest(t)
	scheduler := NewCertificationScheduler(establishmentService, "not a cron spec", 30)

	assert.Error(t, scheduler.Start())
}

func TestCertificationScheduler_Sweep(t *testing.T) {
	establishmentService := setupSchedulerTest(t)

	_, err := establishmentService.AddCertification("est-1", service.CreateCertificationInput{
		Type:       "Food Handler Training",
		Authority:  "NYC Department of Health",
		IssueDate:  time.Now().AddDate(-1, 0, 0),
		ExpiryDate: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	scheduler := NewCertificationScheduler(establishmentService, "0 9 * * *", 30)

	// Sweep is log-only; it must complete without mutating anything.
	scheduler.Sweep()

	expiring, err := establishmentService.ExpiringCertifications(scheduler.window)
	require.NoError(t, err)
	assert.Len(t, expiring, 1)
}
