package services

import (
	"encoding/json"
	"errors"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

// NotificationPublisher pushes a real-time event to a connected user.
// Implemented by the websocket hub; a nil publisher disables pushes.
type NotificationPublisher interface {
	PublishToUser(userID string, payload interface{})
}

type NotificationService interface {
	GetUserNotifications(userID string, criteria dto.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) (*dto.MarkAllReadResponse, error)
	DeleteNotification(userID, notificationID string) error
	GetUnreadCount(userID string) (int64, error)

	// Factory methods used by other services and workers
	NotifyAppointment(userID, title, message, actionLink string) error
	NotifySystem(userID, title, message string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	publisher        NotificationPublisher
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	publisher NotificationPublisher,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

func (s *notificationService) GetUserNotifications(userID string, criteria dto.NotificationCriteria) (*dto.NotificationListResponse, error) {
	criteria.Page, criteria.PageSize = normalizePagination(criteria.Page, criteria.PageSize)

	repoCriteria := repositories.NotificationCriteria{
		UnreadOnly: criteria.UnreadOnly,
		Type:       criteria.Type,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}

	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, repoCriteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
		Total:         total,
		Page:          criteria.Page,
		PageSize:      criteria.PageSize,
		TotalPages:    calculateTotalPages(total, criteria.PageSize),
	}, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// MarkAllAsRead is a single batched update, not a loop over rows.
func (s *notificationService) MarkAllAsRead(userID string) (*dto.MarkAllReadResponse, error) {
	updated, err := s.notificationRepo.MarkAllAsRead(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

func (s *notificationService) DeleteNotification(userID, notificationID string) error {
	if err := s.notificationRepo.SoftDeleteNotification(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) NotifyAppointment(userID, title, message, actionLink string) error {
	if err := s.notificationRepo.CreateAppointmentNotification(userID, title, message, actionLink); err != nil {
		return err
	}
	s.push(userID, "appointment", title, message)
	return nil
}

func (s *notificationService) NotifySystem(userID, title, message string) error {
	if err := s.notificationRepo.CreateSystemNotification(userID, title, message); err != nil {
		return err
	}
	s.push(userID, "system", title, message)
	return nil
}

func (s *notificationService) push(userID, notificationType, title, message string) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishToUser(userID, map[string]interface{}{
		"type":    notificationType,
		"title":   title,
		"message": message,
	})
}

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	response := &dto.NotificationResponse{
		ID:         notification.ID,
		Type:       string(notification.Type),
		Title:      notification.Title,
		Message:    notification.Message,
		ActionLink: notification.ActionLink,
		IsRead:     notification.IsRead,
		ReadAt:     notification.ReadAt,
		CreatedAt:  notification.CreatedAt,
	}

	if len(notification.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(notification.Data, &data); err == nil {
			response.Data = data
		}
	}
	return response
}
