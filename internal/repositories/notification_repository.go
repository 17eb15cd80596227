package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	CreateBulkNotifications(notifications []*models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) (int64, error)
	SoftDeleteNotification(userID, notificationID string) error
	GetUnreadCount(userID string) (int64, error)
	CleanDeletedOlderThan(cutoff time.Time) error

	// Factory methods for the notification types the platform emits
	CreateMatchNotification(donorID string, request *models.BloodRequest) error
	CreateAppointmentNotification(userID, title, message, actionLink string) error
	CreateSystemNotification(userID, title, message string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// NotificationCriteria filters a user's notification listing. Deleted
// entries are always excluded.
type NotificationCriteria struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
	Page       int    `form:"page" binding:"min=1"`
	PageSize   int    `form:"page_size" binding:"min=1,max=100"`
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulkNotifications(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	for _, notification := range notifications {
		if err := r.validateNotification(notification); err != nil {
			return err
		}
	}
	return r.db.CreateInBatches(notifications, 100).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ? AND deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	query := r.db.Where("user_id = ? AND deleted = ?", userID, false)

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	var total int64
	if err := query.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

// MarkAsRead sets the read flag on one of the user's notifications.
// Scoping by user id keeps one user from touching another's ledger.
func (r *NotificationRepositoryImpl) MarkAsRead(userID, notificationID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND deleted = ?", notificationID, userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllAsRead flips every unread notification for the user in a
// single UPDATE and returns the number of rows touched.
func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND deleted = ?", userID, false, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// SoftDeleteNotification hides the notification from listings without
// removing the row.
func (r *NotificationRepositoryImpl) SoftDeleteNotification(userID, notificationID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND deleted = ?", notificationID, userID, false).
		Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND deleted = ?", userID, false, false).
		Count(&count).Error
	return count, err
}

// CleanDeletedOlderThan purges soft-deleted rows past the retention
// window.
func (r *NotificationRepositoryImpl) CleanDeletedOlderThan(cutoff time.Time) error {
	return r.db.Where("deleted = ? AND updated_at < ?", true, cutoff).
		Delete(&models.Notification{}).Error
}

// Factory methods

func (r *NotificationRepositoryImpl) CreateMatchNotification(donorID string, request *models.BloodRequest) error {
	data := map[string]interface{}{
		"request_id":  request.ID,
		"blood_group": request.BloodGroup,
		"city":        request.City,
		"urgency":     request.Urgency,
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	notification := &models.Notification{
		UserID:     donorID,
		Type:       models.NotificationTypeMatch,
		Title:      "A dog near you needs blood",
		Message:    fmt.Sprintf("%s in %s needs %s blood (%s)", request.DogName, request.City, request.BloodGroup, request.Urgency),
		ActionLink: fmt.Sprintf("/requests/%s", request.ID),
		Data:       datatypes.JSON(jsonData),
	}
	return r.CreateNotification(notification)
}

func (r *NotificationRepositoryImpl) CreateAppointmentNotification(userID, title, message, actionLink string) error {
	notification := &models.Notification{
		UserID:     userID,
		Type:       models.NotificationTypeAppointment,
		Title:      title,
		Message:    message,
		ActionLink: actionLink,
	}
	return r.CreateNotification(notification)
}

func (r *NotificationRepositoryImpl) CreateSystemNotification(userID, title, message string) error {
	notification := &models.Notification{
		UserID:  userID,
		Type:    models.NotificationTypeSystem,
		Title:   title,
		Message: message,
	}
	return r.CreateNotification(notification)
}

func (r *NotificationRepositoryImpl) validateNotification(notification *models.Notification) error {
	if notification.UserID == "" {
		return errors.New("user ID is required")
	}
	if notification.Title == "" {
		return errors.New("notification title is required")
	}

	switch notification.Type {
	case models.NotificationTypeMatch, models.NotificationTypeAppointment, models.NotificationTypeSystem:
	default:
		return fmt.Errorf("invalid notification type: %s", notification.Type)
	}

	if len(notification.Data) > 0 && !json.Valid(notification.Data) {
		return ErrInvalidNotificationData
	}
	return nil
}
