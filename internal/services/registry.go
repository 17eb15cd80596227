package services

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	Auth         AuthService
	Profile      ProfileService
	Request      RequestService
	Matching     MatchingService
	Notification NotificationService
	Appointment  AppointmentService
	Donation     DonationService
	Chat         ChatService
	Upload       UploadService
}
