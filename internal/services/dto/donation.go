package dto

import "time"

// ---------------- Requests ----------------

type RecordDonationRequest struct {
	RequestID string    `json:"request_id" validate:"omitempty"`
	DonatedAt time.Time `json:"donated_at" validate:"required"`
	Location  string    `json:"location" validate:"omitempty,max=150"`
}

// ---------------- Responses ----------------

type DonationResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id,omitempty"`
	DonatedAt time.Time `json:"donated_at"`
	VolumeML  int       `json:"volume_ml"`
	Location  string    `json:"location,omitempty"`
}

// DonationStatsResponse summarises a donor's history for their
// dashboard. LivesSaved is an estimate of three lives per donation.
type DonationStatsResponse struct {
	TotalDonations int64 `json:"total_donations"`
	TotalVolumeML  int64 `json:"total_volume_ml"`
	LivesSaved     int64 `json:"lives_saved"`
}
