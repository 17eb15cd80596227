package workers

import (
	"context"
	"time"

	"k9hope_backend/internal/algorithms"
	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/repositories"
)

// EligibilityWorker periodically scans donor profiles and notifies
// donors whose cooldown has just elapsed that they can donate again.
type EligibilityWorker struct {
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	interval         time.Duration
}

func NewEligibilityWorker(
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	interval time.Duration,
) *EligibilityWorker {
	return &EligibilityWorker{
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		interval:         interval,
	}
}

func (w *EligibilityWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("eligibility worker started", "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("eligibility worker stopped")
			return
		case <-ticker.C:
			w.run()
		}
	}
}

func (w *EligibilityWorker) run() {
	donors, _, err := w.profileRepo.ListDonorProfiles(repositories.DonorCriteria{})
	if err != nil {
		logger.WorkerLog("eligibility", "list donors", err)
		return
	}

	now := time.Now()
	notified := 0
	for _, donor := range donors {
		if donor.LastDonationAt == nil {
			continue
		}
		// Only ping donors whose cooldown elapsed within the last scan
		// window, so each donor hears about it once.
		next := donor.LastDonationAt.Add(algorithms.DonationCooldown)
		if next.After(now) || now.Sub(next) > w.interval {
			continue
		}

		result := algorithms.EvaluateEligibility(algorithms.DonorSnapshot{
			WeightKG:       donor.WeightKG,
			DateOfBirth:    donor.DateOfBirth,
			Vaccinated:     donor.Vaccinated,
			HealthStatus:   donor.HealthStatus,
			LastDonationAt: donor.LastDonationAt,
		}, now)
		if !result.Eligible {
			continue
		}

		if err := w.notificationRepo.CreateSystemNotification(
			donor.UserID,
			"Ready to donate again",
			donor.DogName+" has completed the rest period and can donate blood again.",
		); err != nil {
			logger.WorkerLog("eligibility", "notify donor", err)
			continue
		}
		notified++
	}

	logger.WorkerLog("eligibility", "scan", nil)
	if notified > 0 {
		logger.Info("eligibility worker notified donors", "count", notified)
	}
}
