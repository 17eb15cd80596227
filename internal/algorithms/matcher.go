package algorithms

import (
	"sort"
	"strings"

	"k9hope_backend/internal/models"
)

// SortOrder selects how matched requests are ranked for a donor.
type SortOrder string

const (
	// SortNearest lists requests in the donor's own city first, keeping
	// the incoming order within each group.
	SortNearest SortOrder = "nearest"
	// SortUrgent lists requests by urgency rank, most urgent first.
	SortUrgent SortOrder = "urgent"
)

// RequestFilter narrows the candidate set before sorting.
type RequestFilter struct {
	// BloodGroup keeps only requests for this exact group. Empty keeps all.
	BloodGroup string
	// UrgentOnly keeps only immediate and within_24_hours requests.
	UrgentOnly bool
	// Query is matched case-insensitively against dog name, city and
	// clinic name. Empty keeps all.
	Query string
}

// MatchRequests filters and orders open blood requests for a donor.
// donorCity is only consulted for SortNearest. Filtering and sorting
// are stable, so requests that tie keep their stored order.
func MatchRequests(requests []models.BloodRequest, donorCity string, filter RequestFilter, order SortOrder) []models.BloodRequest {
	matched := make([]models.BloodRequest, 0, len(requests))
	for _, r := range requests {
		if filter.BloodGroup != "" && r.BloodGroup != filter.BloodGroup {
			continue
		}
		if filter.UrgentOnly && !r.Urgency.IsUrgent() {
			continue
		}
		if filter.Query != "" && !matchesQuery(r, filter.Query) {
			continue
		}
		matched = append(matched, r)
	}

	switch order {
	case SortNearest:
		city := strings.ToLower(strings.TrimSpace(donorCity))
		sort.SliceStable(matched, func(i, j int) bool {
			iLocal := strings.ToLower(strings.TrimSpace(matched[i].City)) == city
			jLocal := strings.ToLower(strings.TrimSpace(matched[j].City)) == city
			return iLocal && !jLocal
		})
	case SortUrgent:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Urgency.Rank() < matched[j].Urgency.Rank()
		})
	}
	return matched
}

func matchesQuery(r models.BloodRequest, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.DogName), q) ||
		strings.Contains(strings.ToLower(r.City), q) ||
		strings.Contains(strings.ToLower(r.ClinicName), q)
}
