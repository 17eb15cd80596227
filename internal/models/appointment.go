package models

import "time"

// Appointment is a scheduled visit at a clinic. Status only moves
// forward; completed and cancelled are terminal.
type Appointment struct {
	BaseModel
	UserID      string            `gorm:"not null;index"`
	ClinicName  string            `gorm:"not null"`
	ScheduledAt time.Time         `gorm:"not null"`
	Status      AppointmentStatus `gorm:"type:varchar(20);default:'pending'"`
	Notes       string
}
