package algorithms

import (
	"time"

	"k9hope_backend/internal/models"
)

// Donation eligibility thresholds for canine donors.
const (
	MinDonorWeightKG = 25.0
	MinDonorAgeYears = 1
	MaxDonorAgeYears = 8
	DonationCooldown = 56 * 24 * time.Hour
)

// Eligibility criterion identifiers returned in FailedCriteria.
const (
	CriterionWeight      = "weight"
	CriterionAge         = "age"
	CriterionVaccination = "vaccination"
	CriterionHealth      = "health"
	CriterionCooldown    = "cooldown"
)

// DonorSnapshot carries the medical fields the evaluator inspects.
// Pointer fields are nil when the donor profile has not recorded the
// value yet; a missing value fails its criterion.
type DonorSnapshot struct {
	WeightKG       *float64
	DateOfBirth    *time.Time
	Vaccinated     *bool
	HealthStatus   string
	LastDonationAt *time.Time
}

type EligibilityResult struct {
	Eligible       bool       `json:"eligible"`
	FailedCriteria []string   `json:"failed_criteria,omitempty"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}

// EvaluateEligibility applies every donation criterion to the snapshot
// at the given instant and reports all failures, not just the first.
//
// A donor whose last donation was exactly at the cooldown boundary is
// eligible again: next eligible = last donation + cooldown, and the
// cooldown criterion passes when now >= next eligible.
func EvaluateEligibility(d DonorSnapshot, now time.Time) EligibilityResult {
	var failed []string

	if d.WeightKG == nil || *d.WeightKG < MinDonorWeightKG {
		failed = append(failed, CriterionWeight)
	}

	if d.DateOfBirth == nil {
		failed = append(failed, CriterionAge)
	} else {
		age := ageInYears(*d.DateOfBirth, now)
		if age < MinDonorAgeYears || age > MaxDonorAgeYears {
			failed = append(failed, CriterionAge)
		}
	}

	if d.Vaccinated == nil || !*d.Vaccinated {
		failed = append(failed, CriterionVaccination)
	}

	if d.HealthStatus != models.HealthStatusHealthy {
		failed = append(failed, CriterionHealth)
	}

	result := EligibilityResult{}
	if d.LastDonationAt != nil {
		next := d.LastDonationAt.Add(DonationCooldown)
		result.NextEligibleAt = &next
		if next.After(now) {
			failed = append(failed, CriterionCooldown)
		}
	}

	result.Eligible = len(failed) == 0
	result.FailedCriteria = failed
	return result
}

// ageInYears computes whole years elapsed, respecting month and day so
// a birthday later in the year does not count early.
func ageInYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
