package models

import "time"

// DonationVolumeML is the volume of one blood unit.
const DonationVolumeML = 450

// LivesPerDonation is the decorative "lives saved" multiplier shown on
// donor dashboards. It is presentation, not a domain rule.
const LivesPerDonation = 3

// Donation records one completed donation by a donor dog, optionally
// linked to the request it fulfilled. The link is not enforced; a
// donation may outlive its request.
type Donation struct {
	BaseModel
	DonorID   string    `gorm:"not null;index"`
	RequestID *string   `gorm:"index"`
	DonatedAt time.Time `gorm:"not null"`
	VolumeML  int       `gorm:"default:450"`
	Location  string
}
