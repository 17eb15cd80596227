package models

// Document is an uploaded veterinary recommendation letter attached to
// a blood request.
type Document struct {
	BaseModel
	UserID      string `gorm:"not null;index"`
	RequestID   string `gorm:"not null;index"`
	FileName    string `gorm:"not null"`
	StoragePath string `gorm:"not null"`
	ContentType string
	SizeBytes   int64
}
