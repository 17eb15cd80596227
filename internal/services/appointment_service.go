package services

import (
	"errors"
	"fmt"

	"k9hope_backend/internal/email"
	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type AppointmentService interface {
	CreateAppointment(userID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListUserAppointments(userID string, criteria dto.AppointmentCriteria) ([]*dto.AppointmentResponse, error)
	UpdateStatus(userID, appointmentID string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentService struct {
	appointmentRepo     repositories.AppointmentRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
	emailProvider       email.Provider
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
	emailProvider email.Provider,
) AppointmentService {
	return &appointmentService{
		appointmentRepo:     appointmentRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		emailProvider:       emailProvider,
	}
}

func (s *appointmentService) CreateAppointment(userID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := &models.Appointment{
		UserID:      userID,
		ClinicName:  req.ClinicName,
		ScheduledAt: req.ScheduledAt,
		Status:      models.AppointmentStatusPending,
		Notes:       req.Notes,
	}
	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAppointmentResponse(appointment), nil
}

func (s *appointmentService) ListUserAppointments(userID string, criteria dto.AppointmentCriteria) ([]*dto.AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.FindUserAppointments(userID, repositories.AppointmentCriteria{
		View: criteria.View,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, buildAppointmentResponse(&appointments[i]))
	}
	return responses, nil
}

// UpdateStatus enforces the forward-only lifecycle. On confirmation the
// owner gets a notification and, when email is configured, a reminder
// message.
func (s *appointmentService) UpdateStatus(userID, appointmentID string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if appointment.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not your appointment")
	}

	next := models.AppointmentStatus(req.Status)
	if !appointment.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidStatus("appointment",
			fmt.Sprintf("Cannot move appointment from %s to %s", appointment.Status, next))
	}

	appointment.Status = next
	if err := s.appointmentRepo.UpdateAppointment(appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if next == models.AppointmentStatusConfirmed {
		s.notifyConfirmed(appointment)
	}
	return buildAppointmentResponse(appointment), nil
}

func (s *appointmentService) notifyConfirmed(appointment *models.Appointment) {
	message := fmt.Sprintf("Your visit to %s on %s is confirmed.",
		appointment.ClinicName, appointment.ScheduledAt.Format("Mon, 2 Jan 2006 15:04"))

	if err := s.notificationService.NotifyAppointment(
		appointment.UserID,
		"Appointment confirmed",
		message,
		fmt.Sprintf("/appointments/%s", appointment.ID),
	); err != nil {
		logger.WithError(err).Error("appointment confirmation notification failed")
	}

	if s.emailProvider == nil {
		return
	}
	user, err := s.userRepo.FindUserByID(appointment.UserID)
	if err != nil {
		return
	}
	if err := s.emailProvider.Send(user.LoginID, "Appointment confirmed", message); err != nil {
		logger.WithError(err).Warn("appointment confirmation email failed")
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		UserID:      appointment.UserID,
		ClinicName:  appointment.ClinicName,
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
	}
}
