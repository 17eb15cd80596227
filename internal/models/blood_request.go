package models

// BloodRequest is an outstanding request for canine blood. Created by a
// patient or clinic, read-only to donors. One blood unit (BU) is 450 ml.
type BloodRequest struct {
	BaseModel
	UserID       string        `gorm:"not null;index"`
	DogName      string        `gorm:"not null"`
	BloodGroup   string        `gorm:"type:varchar(20);not null;index"`
	City         string        `gorm:"index"`
	Urgency      Urgency       `gorm:"type:varchar(20);not null"`
	Quantity     int           `gorm:"default:1"` // blood units
	Reason       string
	ClinicName   string
	ContactPhone string
	ContactEmail string
	Status       RequestStatus `gorm:"type:varchar(20);default:'pending';index"`
}
