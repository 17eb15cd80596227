package dto

import "time"

// ---------------- Requests ----------------

type CreateAppointmentRequest struct {
	ClinicName  string    `json:"clinic_name" validate:"required,max=150"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type AppointmentCriteria struct {
	View string `form:"view" validate:"omitempty,oneof=upcoming past cancelled"`
}

// ---------------- Responses ----------------

type AppointmentResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ClinicName  string    `json:"clinic_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
