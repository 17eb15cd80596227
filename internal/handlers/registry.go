package handlers

import (
	"k9hope_backend/internal/services"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Request      *RequestHandler
	Matching     *MatchingHandler
	Notification *NotificationHandler
	Appointment  *AppointmentHandler
	Donation     *DonationHandler
	Chat         *ChatHandler
	Upload       *UploadHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		Profile:      NewProfileHandler(base, container.Profile),
		Request:      NewRequestHandler(base, container.Request),
		Matching:     NewMatchingHandler(base, container.Matching),
		Notification: NewNotificationHandler(base, container.Notification),
		Appointment:  NewAppointmentHandler(base, container.Appointment),
		Donation:     NewDonationHandler(base, container.Donation),
		Chat:         NewChatHandler(base, container.Chat),
		Upload:       NewUploadHandler(base, container.Upload),
	}
}
