package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/email"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
	nextID       int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) CreateAppointment(a *models.Appointment) error {
	f.nextID++
	a.ID = string(rune('A' + f.nextID))
	a.CreatedAt = time.Now()
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) FindAppointmentByID(id string) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, repositories.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) FindUserAppointments(userID string, criteria repositories.AppointmentCriteria) ([]models.Appointment, error) {
	now := time.Now()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.UserID != userID {
			continue
		}
		switch criteria.View {
		case repositories.AppointmentViewUpcoming:
			if a.ScheduledAt.Before(now) || a.Status == models.AppointmentStatusCancelled {
				continue
			}
		case repositories.AppointmentViewPast:
			if !a.ScheduledAt.Before(now) || a.Status == models.AppointmentStatusCancelled {
				continue
			}
		case repositories.AppointmentViewCancelled:
			if a.Status != models.AppointmentStatusCancelled {
				continue
			}
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateAppointment(a *models.Appointment) error {
	f.appointments[a.ID] = a
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(u *models.User) error {
	for _, existing := range f.users {
		if existing.LoginID == u.LoginID {
			return repositories.ErrLoginIDTaken
		}
	}
	if u.ID == "" {
		u.ID = u.LoginID
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindUserByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindUserByLoginID(loginID string) (*models.User, error) {
	for _, u := range f.users {
		if u.LoginID == loginID {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateUser(u *models.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) SetOnboarded(userID string) error {
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Onboarded = true
	return nil
}
func (f *fakeUserRepo) CountByRole(role models.UserRole) (int64, error)    { return 0, nil }
func (f *fakeUserRepo) StoreRefreshToken(t *models.RefreshToken) error     { return nil }
func (f *fakeUserRepo) FindRefreshToken(t string) (*models.RefreshToken, error) {
	return nil, repositories.ErrRefreshTokenNotFound
}
func (f *fakeUserRepo) RevokeRefreshToken(t string) error      { return nil }
func (f *fakeUserRepo) RevokeUserRefreshTokens(u string) error { return nil }
func (f *fakeUserRepo) DeleteExpiredRefreshTokens() error      { return nil }

func newAppointmentFixture(t *testing.T) (AppointmentService, *fakeAppointmentRepo, *fakeNotificationRepo, *email.MockProvider) {
	t.Helper()
	appointmentRepo := newFakeAppointmentRepo()
	notificationRepo := newFakeNotificationRepo()
	userRepo := newFakeUserRepo()
	userRepo.users["owner-1"] = &models.User{
		BaseModel: models.BaseModel{ID: "owner-1"},
		LoginID:   "owner@example.com",
		Role:      models.UserRolePatient,
	}
	mailer := email.NewMockProvider()

	service := NewAppointmentService(
		appointmentRepo,
		userRepo,
		NewNotificationService(notificationRepo, nil),
		mailer,
	)
	return service, appointmentRepo, notificationRepo, mailer
}

func TestAppointmentService_ForwardTransitions(t *testing.T) {
	service, _, _, _ := newAppointmentFixture(t)

	created, err := service.CreateAppointment("owner-1", &dto.CreateAppointmentRequest{
		ClinicName:  "MVC Vepery",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)

	confirmed, err := service.UpdateStatus("owner-1", created.ID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	completed, err := service.UpdateStatus("owner-1", created.ID, &dto.UpdateAppointmentStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}

func TestAppointmentService_NoBackwardTransition(t *testing.T) {
	service, _, _, _ := newAppointmentFixture(t)

	created, err := service.CreateAppointment("owner-1", &dto.CreateAppointmentRequest{
		ClinicName:  "MVC Vepery",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus("owner-1", created.ID, &dto.UpdateAppointmentStatusRequest{Status: "completed"})
	require.NoError(t, err)

	// Terminal state: no further transitions of any kind.
	_, err = service.UpdateStatus("owner-1", created.ID, &dto.UpdateAppointmentStatusRequest{Status: "cancelled"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestAppointmentService_ConfirmationNotifiesAndEmails(t *testing.T) {
	service, _, notificationRepo, mailer := newAppointmentFixture(t)

	created, err := service.CreateAppointment("owner-1", &dto.CreateAppointmentRequest{
		ClinicName:  "MVC Vepery",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus("owner-1", created.ID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	count, err := notificationRepo.GetUnreadCount("owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.Len(t, mailer.Messages, 1)
	assert.Equal(t, "owner@example.com", mailer.Messages[0].To)
	assert.Equal(t, "Appointment confirmed", mailer.Messages[0].Subject)
}

func TestAppointmentService_ListViews(t *testing.T) {
	service, appointmentRepo, _, _ := newAppointmentFixture(t)

	seed := func(id string, status models.AppointmentStatus, offset time.Duration) {
		appointmentRepo.appointments[id] = &models.Appointment{
			BaseModel:   models.BaseModel{ID: id},
			UserID:      "owner-1",
			ClinicName:  "MVC Vepery",
			ScheduledAt: time.Now().Add(offset),
			Status:      status,
		}
	}
	seed("up", models.AppointmentStatusConfirmed, 48*time.Hour)
	seed("past", models.AppointmentStatusCompleted, -48*time.Hour)
	seed("gone", models.AppointmentStatusCancelled, 24*time.Hour)

	upcoming, err := service.ListUserAppointments("owner-1", dto.AppointmentCriteria{View: "upcoming"})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "up", upcoming[0].ID)

	past, err := service.ListUserAppointments("owner-1", dto.AppointmentCriteria{View: "past"})
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "past", past[0].ID)

	cancelled, err := service.ListUserAppointments("owner-1", dto.AppointmentCriteria{View: "cancelled"})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "gone", cancelled[0].ID)

	all, err := service.ListUserAppointments("owner-1", dto.AppointmentCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAppointmentService_OwnershipEnforced(t *testing.T) {
	service, _, _, _ := newAppointmentFixture(t)

	created, err := service.CreateAppointment("owner-1", &dto.CreateAppointmentRequest{
		ClinicName:  "MVC Vepery",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus("intruder", created.ID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}
