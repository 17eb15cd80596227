package workers

import (
	"context"
	"fmt"
	"time"

	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
)

// RequestWorker expires stale pending blood requests so the donor feed
// stays current, and purges old soft-deleted notifications.
type RequestWorker struct {
	requestRepo      repositories.BloodRequestRepository
	notificationRepo repositories.NotificationRepository
	interval         time.Duration
	requestTTL       time.Duration
}

// Soft-deleted notifications are purged after this long.
const deletedNotificationRetention = 90 * 24 * time.Hour

func NewRequestWorker(
	requestRepo repositories.BloodRequestRepository,
	notificationRepo repositories.NotificationRepository,
	interval, requestTTL time.Duration,
) *RequestWorker {
	return &RequestWorker{
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		interval:         interval,
		requestTTL:       requestTTL,
	}
}

func (w *RequestWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("request worker started", "interval", w.interval, "request_ttl", w.requestTTL)
	for {
		select {
		case <-ctx.Done():
			logger.Info("request worker stopped")
			return
		case <-ticker.C:
			w.run()
		}
	}
}

func (w *RequestWorker) run() {
	cutoff := time.Now().Add(-w.requestTTL)
	stale, err := w.requestRepo.FindStalePending(cutoff)
	logger.WorkerLog("request", "find stale requests", err)
	if err == nil {
		w.expireRequests(stale)
	}

	err = w.notificationRepo.CleanDeletedOlderThan(time.Now().Add(-deletedNotificationRetention))
	logger.WorkerLog("request", "purge deleted notifications", err)
}

// expireRequests cancels each stale request and tells its owner.
func (w *RequestWorker) expireRequests(stale []models.BloodRequest) {
	var expired int
	for i := range stale {
		request := &stale[i]
		if err := w.requestRepo.UpdateStatus(request.ID, models.RequestStatusCancelled); err != nil {
			logger.WithError(err).Error("request worker: cancel failed", "request_id", request.ID)
			continue
		}
		expired++

		message := fmt.Sprintf(
			"Your blood request for %s stayed open past its deadline and has been closed. Post it again if %s still needs a donor.",
			request.DogName, request.DogName)
		if err := w.notificationRepo.CreateSystemNotification(
			request.UserID, "Blood request expired", message); err != nil {
			logger.WithError(err).Error("request worker: expiry notification failed", "request_id", request.ID)
		}
	}
	if expired > 0 {
		logger.Info("request worker expired requests", "count", expired)
	}
}
