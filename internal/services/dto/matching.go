package dto

import "time"

// ---------------- Requests ----------------

// MatchCriteria is bound from query parameters on the donor feed.
type MatchCriteria struct {
	BloodGroup string `form:"blood_group" validate:"omitempty,bloodgroup"`
	UrgentOnly bool   `form:"urgent_only"`
	Query      string `form:"q" validate:"omitempty,max=100"`
	Sort       string `form:"sort" validate:"omitempty,oneof=nearest urgent"`
}

// ---------------- Responses ----------------

type MatchListResponse struct {
	Requests []*BloodRequestResponse `json:"requests"`
	Total    int                     `json:"total"`
}

type EligibilityResponse struct {
	Eligible       bool       `json:"eligible"`
	FailedCriteria []string   `json:"failed_criteria,omitempty"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}
