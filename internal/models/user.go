package models

import "time"

// User is the account record shared by every role. Donors and patients
// sign in with a phone number, clinics and organisations with an email;
// both land in LoginID.
type User struct {
	BaseModel
	LoginID      string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'"`
	Onboarded    bool       `gorm:"default:false"`

	// Relations
	DonorProfile        *DonorProfile        `gorm:"foreignKey:UserID"`
	PatientProfile      *PatientProfile      `gorm:"foreignKey:UserID"`
	ClinicProfile       *ClinicProfile       `gorm:"foreignKey:UserID"`
	OrganisationProfile *OrganisationProfile `gorm:"foreignKey:UserID"`
	RefreshTokens       []RefreshToken       `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
