package models

import (
	"time"

	"github.com/lib/pq"
)

// DonorProfile describes a donor dog. The medical fields that feed the
// eligibility rules are pointers: an absent value fails the criterion it
// belongs to rather than producing an error.
type DonorProfile struct {
	BaseModel
	UserID         string     `gorm:"uniqueIndex;not null" json:"user_id"`
	DogName        string     `json:"dog_name"`
	BloodGroup     string     `gorm:"type:varchar(20)" json:"blood_group"`
	WeightKG       *float64   `json:"weight_kg"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	City           string     `gorm:"index" json:"city"`
	Region         string     `json:"region"`
	Vaccinated     *bool      `json:"vaccinated"`
	HealthStatus   string     `gorm:"type:varchar(30)" json:"health_status"`
	LastDonationAt *time.Time `json:"last_donation_at"`

	// Lifestyle flags collected at onboarding.
	OnMedication   bool `gorm:"default:false" json:"on_medication"`
	RecentDonation bool `gorm:"default:false" json:"recent_donation"`
	SmokerExposed  bool `gorm:"default:false" json:"smoker_exposed"`
	AlcoholExposed bool `gorm:"default:false" json:"alcohol_exposed"`
}

// PatientProfile describes a pet owner's dog and the defaults used when
// the owner posts a blood request.
type PatientProfile struct {
	BaseModel
	UserID          string  `gorm:"uniqueIndex;not null" json:"user_id"`
	DogName         string  `json:"dog_name"`
	BloodGroup      string  `gorm:"type:varchar(20)" json:"blood_group"`
	City            string  `gorm:"index" json:"city"`
	Region          string  `json:"region"`
	Phone           string  `json:"phone"`
	ClinicName      string  `json:"clinic_name"`
	DefaultUrgency  Urgency `gorm:"type:varchar(20)" json:"default_urgency"`
	DefaultReason   string  `json:"default_reason"`
	DefaultQuantity int     `gorm:"default:1" json:"default_quantity"`
}

// ClinicProfile describes a veterinary clinic.
type ClinicProfile struct {
	BaseModel
	UserID     string         `gorm:"uniqueIndex;not null" json:"user_id"`
	ClinicName string         `json:"clinic_name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	City       string         `gorm:"index" json:"city"`
	Services   pq.StringArray `gorm:"type:text[]" json:"services"`
}

type OrganisationProfile struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null" json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	City   string `json:"city"`
}
