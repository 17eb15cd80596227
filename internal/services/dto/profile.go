package dto

import "time"

// ---------------- Requests ----------------

// UpdateDonorProfileRequest carries partial updates; nil fields are
// left untouched.
type UpdateDonorProfileRequest struct {
	DogName        *string    `json:"dog_name,omitempty" validate:"omitempty,max=100"`
	BloodGroup     *string    `json:"blood_group,omitempty" validate:"omitempty,bloodgroup"`
	WeightKG       *float64   `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	City           *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	Region         *string    `json:"region,omitempty" validate:"omitempty,max=100"`
	Vaccinated     *bool      `json:"vaccinated,omitempty"`
	HealthStatus   *string    `json:"health_status,omitempty" validate:"omitempty,max=30"`
	OnMedication   *bool      `json:"on_medication,omitempty"`
	RecentDonation *bool      `json:"recent_donation,omitempty"`
	SmokerExposed  *bool      `json:"smoker_exposed,omitempty"`
	AlcoholExposed *bool      `json:"alcohol_exposed,omitempty"`
}

type UpdatePatientProfileRequest struct {
	DogName         *string `json:"dog_name,omitempty" validate:"omitempty,max=100"`
	BloodGroup      *string `json:"blood_group,omitempty" validate:"omitempty,bloodgroup"`
	City            *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Region          *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	ClinicName      *string `json:"clinic_name,omitempty" validate:"omitempty,max=150"`
	DefaultUrgency  *string `json:"default_urgency,omitempty" validate:"omitempty,urgency"`
	DefaultReason   *string `json:"default_reason,omitempty" validate:"omitempty,max=500"`
	DefaultQuantity *int    `json:"default_quantity,omitempty" validate:"omitempty,gt=0"`
}

type UpdateClinicProfileRequest struct {
	ClinicName *string  `json:"clinic_name,omitempty" validate:"omitempty,max=150"`
	Email      *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	City       *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Services   []string `json:"services,omitempty"`
}

type UpdateOrganisationProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	City  *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

// ---------------- Responses ----------------

// ProfileResponse wraps whichever role profile the user owns. Exactly
// one of the role fields is set.
type ProfileResponse struct {
	Role         string      `json:"role"`
	Onboarded    bool        `json:"onboarded"`
	Donor        interface{} `json:"donor,omitempty"`
	Patient      interface{} `json:"patient,omitempty"`
	Clinic       interface{} `json:"clinic,omitempty"`
	Organisation interface{} `json:"organisation,omitempty"`
}
