package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Appointment listing views.
const (
	AppointmentViewUpcoming  = "upcoming"
	AppointmentViewPast      = "past"
	AppointmentViewCancelled = "cancelled"
)

// AppointmentCriteria narrows a user's appointment listing to one view.
// An empty view returns everything.
type AppointmentCriteria struct {
	View string
}

type AppointmentRepository interface {
	CreateAppointment(appointment *models.Appointment) error
	FindAppointmentByID(id string) (*models.Appointment, error)
	FindUserAppointments(userID string, criteria AppointmentCriteria) ([]models.Appointment, error)
	UpdateAppointment(appointment *models.Appointment) error
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *AppointmentRepositoryImpl) FindAppointmentByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepositoryImpl) FindUserAppointments(userID string, criteria AppointmentCriteria) ([]models.Appointment, error) {
	query := r.db.Where("user_id = ?", userID)

	switch criteria.View {
	case AppointmentViewUpcoming:
		query = query.Where("scheduled_at >= ? AND status <> ?",
			time.Now(), models.AppointmentStatusCancelled)
	case AppointmentViewPast:
		query = query.Where("scheduled_at < ? AND status <> ?",
			time.Now(), models.AppointmentStatusCancelled)
	case AppointmentViewCancelled:
		query = query.Where("status = ?", models.AppointmentStatusCancelled)
	}

	var appointments []models.Appointment
	err := query.Order("scheduled_at ASC").Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) UpdateAppointment(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}
