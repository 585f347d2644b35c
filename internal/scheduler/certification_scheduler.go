package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhpark/safedine-backend/internal/app/service"
	"github.com/jhpark/safedine-backend/pkg/logger"
)

// CertificationScheduler runs a periodic sweep that reports certifications
// approaching expiry. It only logs; expired certifications stay visible on
// every read path and nothing is enforced.
type CertificationScheduler struct {
	cron                 *cron.Cron
	establishmentService service.EstablishmentService
	cronSpec             string
	window               time.Duration
}

func NewCertificationScheduler(establishmentService service.EstablishmentService, cronSpec string, windowDays int) *CertificationScheduler {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &CertificationScheduler{
		cron:                 cron.New(),
		establishmentService: establishmentService,
		cronSpec:             cronSpec,
		window:               time.Duration(windowDays) * 24 * time.Hour,
	}
}

// Start registers the sweep and starts the cron loop.
func (s *CertificationScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cronSpec, s.Sweep)
	if err != nil {
		logger.Error("Failed to add cron job for certification expiry sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Certification expiry scheduler started", map[string]interface{}{
		"cron_spec":   s.cronSpec,
		"window_days": int(s.window.Hours() / 24),
	})
	return nil
}

// Sweep logs every certification expiring within the configured window.
func (s *CertificationScheduler) Sweep() {
	logger.Info("Starting certification expiry sweep", nil)

	expiring, err := s.establishmentService.ExpiringCertifications(s.window)
	if err != nil {
		logger.Error("Failed to list expiring certifications", err)
		return
	}

	for _, cert := range expiring {
		logger.Warn("Certification expiring soon", map[string]interface{}{
			"certification_id": cert.ID,
			"establishment_id": cert.EstablishmentID,
			"type":             cert.Type,
			"authority":        cert.Authority,
			"expiry_date":      cert.ExpiryDate.Format("2006-01-02"),
			"days_remaining":   int(time.Until(cert.ExpiryDate).Hours() / 24),
		})
	}

	logger.Info("Certification expiry sweep completed", map[string]interface{}{
		"expiring": len(expiring),
	})
}

// Stop stops the cron loop.
func (s *CertificationScheduler) Stop() {
	logger.Info("Stopping certification expiry scheduler...")
	s.cron.Stop()
	logger.Info("Certification expiry scheduler stopped")
}
