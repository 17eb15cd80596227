package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is an append-only user-facing event. Deletion is soft:
// the Deleted flag hides the row from every read path but the row
// itself persists.
type Notification struct {
	BaseModel
	UserID     string           `gorm:"not null;index"`
	Type       NotificationType `gorm:"type:varchar(20);not null"`
	Title      string           `gorm:"not null"`
	Message    string
	ActionLink string
	Data       datatypes.JSON `gorm:"type:jsonb"` // {"request_id": "...", "appointment_id": "..."}
	IsRead     bool           `gorm:"default:false"`
	ReadAt     *time.Time
	Deleted    bool `gorm:"default:false;index"`
}
