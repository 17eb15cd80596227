package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
)

type fakeRequestRepo struct {
	requests map[string]*models.BloodRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.BloodRequest)}
}

func (f *fakeRequestRepo) CreateRequest(r *models.BloodRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) FindRequestByID(id string) (*models.BloodRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, repositories.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) FindOpenRequests() ([]models.BloodRequest, error) { return nil, nil }

func (f *fakeRequestRepo) FindUserRequests(userID string, criteria repositories.RequestCriteria) ([]models.BloodRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeRequestRepo) UpdateRequest(r *models.BloodRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(id string, status models.RequestStatus) error {
	r, ok := f.requests[id]
	if !ok {
		return repositories.ErrRequestNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRequestRepo) FindStalePending(cutoff time.Time) ([]models.BloodRequest, error) {
	var out []models.BloodRequest
	for _, r := range f.requests {
		if r.Status == models.RequestStatusPending && r.CreatedAt.Before(cutoff) {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

func (f *fakeNotificationRepo) CreateNotification(n *models.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) CreateBulkNotifications(ns []*models.Notification) error {
	f.notifications = append(f.notifications, ns...)
	return nil
}

func (f *fakeNotificationRepo) FindNotificationByID(id string) (*models.Notification, error) {
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) MarkAsRead(userID, id string) error { return nil }

func (f *fakeNotificationRepo) MarkAllAsRead(userID string) (int64, error) { return 0, nil }

func (f *fakeNotificationRepo) SoftDeleteNotification(userID, id string) error { return nil }

func (f *fakeNotificationRepo) GetUnreadCount(userID string) (int64, error) { return 0, nil }

func (f *fakeNotificationRepo) CleanDeletedOlderThan(cutoff time.Time) error { return nil }

func (f *fakeNotificationRepo) CreateMatchNotification(donorID string, request *models.BloodRequest) error {
	return f.CreateNotification(&models.Notification{
		UserID: donorID, Type: models.NotificationTypeMatch,
	})
}

func (f *fakeNotificationRepo) CreateAppointmentNotification(userID, title, message, actionLink string) error {
	return f.CreateNotification(&models.Notification{
		UserID: userID, Type: models.NotificationTypeAppointment, Title: title, Message: message,
	})
}

func (f *fakeNotificationRepo) CreateSystemNotification(userID, title, message string) error {
	return f.CreateNotification(&models.Notification{
		UserID: userID, Type: models.NotificationTypeSystem, Title: title, Message: message,
	})
}

func (f *fakeNotificationRepo) forUser(userID string) []*models.Notification {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func seedRequest(repo *fakeRequestRepo, id, userID string, status models.RequestStatus, age time.Duration) {
	repo.requests[id] = &models.BloodRequest{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now().Add(-age)},
		UserID:    userID,
		DogName:   "Jillu",
		Status:    status,
	}
}

func TestRequestWorker_ExpiresStaleRequestsAndNotifiesOwners(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	notificationRepo := &fakeNotificationRepo{}
	worker := NewRequestWorker(requestRepo, notificationRepo, time.Minute, 24*time.Hour)

	seedRequest(requestRepo, "stale", "owner-1", models.RequestStatusPending, 48*time.Hour)
	worker.run()

	assert.Equal(t, models.RequestStatusCancelled, requestRepo.requests["stale"].Status)

	owned := notificationRepo.forUser("owner-1")
	require.Len(t, owned, 1)
	assert.Equal(t, models.NotificationTypeSystem, owned[0].Type)
	assert.Equal(t, "Blood request expired", owned[0].Title)
	assert.Contains(t, owned[0].Message, "Jillu")
}

func TestRequestWorker_LeavesFreshAndClosedRequestsAlone(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	notificationRepo := &fakeNotificationRepo{}
	worker := NewRequestWorker(requestRepo, notificationRepo, time.Minute, 24*time.Hour)

	seedRequest(requestRepo, "fresh", "owner-1", models.RequestStatusPending, time.Hour)
	seedRequest(requestRepo, "done", "owner-2", models.RequestStatusFulfilled, 48*time.Hour)
	worker.run()

	assert.Equal(t, models.RequestStatusPending, requestRepo.requests["fresh"].Status)
	assert.Equal(t, models.RequestStatusFulfilled, requestRepo.requests["done"].Status)
	assert.Empty(t, notificationRepo.notifications)
}
