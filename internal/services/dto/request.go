package dto

import "time"

// ---------------- Requests ----------------

// CreateBloodRequestRequest: fields left empty fall back to the
// patient profile defaults where those exist.
type CreateBloodRequestRequest struct {
	DogName      string `json:"dog_name" validate:"required,max=100"`
	BloodGroup   string `json:"blood_group" validate:"required,bloodgroup"`
	City         string `json:"city" validate:"required,max=100"`
	Urgency      string `json:"urgency" validate:"omitempty,urgency"`
	Quantity     int    `json:"quantity" validate:"omitempty,gt=0"`
	Reason       string `json:"reason" validate:"omitempty,max=500"`
	ClinicName   string `json:"clinic_name" validate:"omitempty,max=150"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

type FulfilRequestRequest struct {
	DonorID  string `json:"donor_id" validate:"required"`
	Location string `json:"location" validate:"omitempty,max=150"`
}

// ---------------- Responses ----------------

type BloodRequestResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DogName      string    `json:"dog_name"`
	BloodGroup   string    `json:"blood_group"`
	City         string    `json:"city"`
	Urgency      string    `json:"urgency"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason,omitempty"`
	ClinicName   string    `json:"clinic_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BloodRequestListResponse struct {
	Requests   []*BloodRequestResponse `json:"requests"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalPages int                     `json:"total_pages"`
}
