package algorithms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"k9hope_backend/internal/models"
)

func ptr[T any](v T) *T { return &v }

func healthySnapshot(now time.Time) DonorSnapshot {
	return DonorSnapshot{
		WeightKG:     ptr(30.0),
		DateOfBirth:  ptr(now.AddDate(-4, 0, 0)),
		Vaccinated:   ptr(true),
		HealthStatus: models.HealthStatusHealthy,
	}
}

func TestEvaluateEligibility_AllCriteriaPass(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	result := EvaluateEligibility(healthySnapshot(now), now)

	assert.True(t, result.Eligible)
	assert.Empty(t, result.FailedCriteria)
	assert.Nil(t, result.NextEligibleAt)
}

func TestEvaluateEligibility_WeightBoundary(t *testing.T) {
	now := time.Now()

	d := healthySnapshot(now)
	d.WeightKG = ptr(25.0)
	assert.True(t, EvaluateEligibility(d, now).Eligible)

	d.WeightKG = ptr(24.9)
	result := EvaluateEligibility(d, now)
	assert.False(t, result.Eligible)
	assert.Contains(t, result.FailedCriteria, CriterionWeight)
}

func TestEvaluateEligibility_AgeWindow(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		birth    time.Time
		eligible bool
	}{
		{"under one year", now.AddDate(0, -11, 0), false},
		{"exactly one year", now.AddDate(-1, 0, 0), true},
		{"exactly eight years", now.AddDate(-8, 0, 0), true},
		{"nine years", now.AddDate(-9, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := healthySnapshot(now)
			d.DateOfBirth = ptr(tc.birth)
			result := EvaluateEligibility(d, now)
			assert.Equal(t, tc.eligible, result.Eligible)
			if !tc.eligible {
				assert.Contains(t, result.FailedCriteria, CriterionAge)
			}
		})
	}
}

func TestEvaluateEligibility_CooldownBoundary(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// Exactly 56 days ago: eligible again today.
	d := healthySnapshot(now)
	d.LastDonationAt = ptr(now.Add(-DonationCooldown))
	result := EvaluateEligibility(d, now)
	assert.True(t, result.Eligible)
	assert.NotNil(t, result.NextEligibleAt)
	assert.True(t, result.NextEligibleAt.Equal(now))

	// 55 days ago: still cooling down.
	d.LastDonationAt = ptr(now.Add(-55 * 24 * time.Hour))
	result = EvaluateEligibility(d, now)
	assert.False(t, result.Eligible)
	assert.Contains(t, result.FailedCriteria, CriterionCooldown)
	assert.True(t, result.NextEligibleAt.After(now))
}

func TestEvaluateEligibility_MissingFieldsFail(t *testing.T) {
	now := time.Now()
	result := EvaluateEligibility(DonorSnapshot{}, now)

	assert.False(t, result.Eligible)
	assert.ElementsMatch(t, []string{
		CriterionWeight, CriterionAge, CriterionVaccination, CriterionHealth,
	}, result.FailedCriteria)
}

func TestEvaluateEligibility_CollectsAllFailures(t *testing.T) {
	now := time.Now()
	d := healthySnapshot(now)
	d.WeightKG = ptr(20.0)
	d.Vaccinated = ptr(false)
	d.HealthStatus = "under_treatment"

	result := EvaluateEligibility(d, now)
	assert.False(t, result.Eligible)
	assert.Len(t, result.FailedCriteria, 3)
}
