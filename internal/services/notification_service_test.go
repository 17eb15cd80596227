package services

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
)

// fakeNotificationRepo is an in-memory NotificationRepository.
type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (f *fakeNotificationRepo) CreateNotification(n *models.Notification) error {
	f.nextID++
	n.ID = string(rune('a' + f.nextID))
	n.CreatedAt = time.Now()
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) CreateBulkNotifications(ns []*models.Notification) error {
	for _, n := range ns {
		if err := f.CreateNotification(n); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNotificationRepo) FindNotificationByID(id string) (*models.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id && !n.Deleted {
			return n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID != userID || n.Deleted {
			continue
		}
		if criteria.UnreadOnly && n.IsRead {
			continue
		}
		if criteria.Type != "" && string(n.Type) != criteria.Type {
			continue
		}
		out = append(out, *n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) MarkAsRead(userID, id string) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID && !n.Deleted {
			now := time.Now()
			n.IsRead = true
			n.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllAsRead(userID string) (int64, error) {
	var updated int64
	now := time.Now()
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead && !n.Deleted {
			n.IsRead = true
			n.ReadAt = &now
			updated++
		}
	}
	return updated, nil
}

func (f *fakeNotificationRepo) SoftDeleteNotification(userID, id string) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID && !n.Deleted {
			n.Deleted = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) GetUnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead && !n.Deleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) CleanDeletedOlderThan(cutoff time.Time) error { return nil }

func (f *fakeNotificationRepo) CreateMatchNotification(donorID string, request *models.BloodRequest) error {
	return f.CreateNotification(&models.Notification{
		UserID: donorID,
		Type:   models.NotificationTypeMatch,
		Title:  "A dog near you needs blood",
	})
}

func (f *fakeNotificationRepo) CreateAppointmentNotification(userID, title, message, actionLink string) error {
	return f.CreateNotification(&models.Notification{
		UserID: userID, Type: models.NotificationTypeAppointment, Title: title, Message: message, ActionLink: actionLink,
	})
}

func (f *fakeNotificationRepo) CreateSystemNotification(userID, title, message string) error {
	return f.CreateNotification(&models.Notification{
		UserID: userID, Type: models.NotificationTypeSystem, Title: title, Message: message,
	})
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) PublishToUser(userID string, payload interface{}) {
	f.published = append(f.published, userID)
}

func seedNotifications(repo *fakeNotificationRepo, userID string, count int) {
	for i := 0; i < count; i++ {
		_ = repo.CreateSystemNotification(userID, "title", "message")
	}
}

func TestNotificationService_MarkAllAsReadClearsUnread(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, nil)
	seedNotifications(repo, "user-1", 3)
	seedNotifications(repo, "user-2", 2)

	response, err := service.MarkAllAsRead("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.Updated)

	count, err := service.GetUnreadCount("user-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	// Other users' ledgers are untouched.
	count, err = service.GetUnreadCount("user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationService_MarkAllAsReadIsIdempotent(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, nil)
	seedNotifications(repo, "user-1", 2)

	first, err := service.MarkAllAsRead("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Updated)

	second, err := service.MarkAllAsRead("user-1")
	require.NoError(t, err)
	assert.Zero(t, second.Updated)
}

func TestNotificationService_DeletedExcludedFromListing(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, nil)
	seedNotifications(repo, "user-1", 2)

	listing, err := service.GetUserNotifications("user-1", dto.NotificationCriteria{})
	require.NoError(t, err)
	require.Len(t, listing.Notifications, 2)

	err = service.DeleteNotification("user-1", listing.Notifications[0].ID)
	require.NoError(t, err)

	listing, err = service.GetUserNotifications("user-1", dto.NotificationCriteria{})
	require.NoError(t, err)
	assert.Len(t, listing.Notifications, 1)
	assert.Equal(t, int64(1), listing.Total)
}

func TestNotificationService_DeleteIsScopedToOwner(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, nil)
	seedNotifications(repo, "user-1", 1)

	listing, err := service.GetUserNotifications("user-1", dto.NotificationCriteria{})
	require.NoError(t, err)

	err = service.DeleteNotification("intruder", listing.Notifications[0].ID)
	require.Error(t, err)

	// Still visible to the owner.
	listing, err = service.GetUserNotifications("user-1", dto.NotificationCriteria{})
	require.NoError(t, err)
	assert.Len(t, listing.Notifications, 1)
}

func TestNotificationService_UnreadCountTracksReads(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, nil)
	seedNotifications(repo, "user-1", 3)

	listing, err := service.GetUserNotifications("user-1", dto.NotificationCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), listing.UnreadCount)

	err = service.MarkAsRead("user-1", listing.Notifications[0].ID)
	require.NoError(t, err)

	count, err := service.GetUnreadCount("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationService_FactoryPushesToPublisher(t *testing.T) {
	repo := newFakeNotificationRepo()
	publisher := &fakePublisher{}
	service := NewNotificationService(repo, publisher)

	err := service.NotifySystem("user-1", "Welcome", "Thanks for joining")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, publisher.published)
}
