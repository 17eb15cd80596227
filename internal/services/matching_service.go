package services

import (
	"errors"
	"time"

	"k9hope_backend/internal/algorithms"
	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type MatchingService interface {
	// FindRequestsForDonor is the donor's request feed: open requests
	// filtered and ordered for the caller.
	FindRequestsForDonor(donorID string, criteria dto.MatchCriteria) (*dto.MatchListResponse, error)
	// CheckEligibility evaluates the donor dog against every donation
	// criterion.
	CheckEligibility(donorID string) (*dto.EligibilityResponse, error)
	// NotifyMatchingDonors pushes a match notification to every donor
	// whose blood group matches the new request.
	NotifyMatchingDonors(request *models.BloodRequest)
}

type matchingService struct {
	requestRepo      repositories.BloodRequestRepository
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	publisher        NotificationPublisher
}

func NewMatchingService(
	requestRepo repositories.BloodRequestRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	publisher NotificationPublisher,
) MatchingService {
	return &matchingService{
		requestRepo:      requestRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

func (s *matchingService) FindRequestsForDonor(donorID string, criteria dto.MatchCriteria) (*dto.MatchListResponse, error) {
	profile, err := s.profileRepo.FindDonorProfileByUserID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	open, err := s.requestRepo.FindOpenRequests()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Default the blood group filter to the donor's own group so the
	// feed only shows requests their dog can serve.
	filter := algorithms.RequestFilter{
		BloodGroup: criteria.BloodGroup,
		UrgentOnly: criteria.UrgentOnly,
		Query:      criteria.Query,
	}
	if filter.BloodGroup == "" {
		filter.BloodGroup = profile.BloodGroup
	}

	order := algorithms.SortOrder(criteria.Sort)
	if order == "" {
		order = algorithms.SortUrgent
	}

	matched := algorithms.MatchRequests(open, profile.City, filter, order)

	responses := make([]*dto.BloodRequestResponse, 0, len(matched))
	for i := range matched {
		responses = append(responses, buildRequestResponse(&matched[i]))
	}
	return &dto.MatchListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

func (s *matchingService) CheckEligibility(donorID string) (*dto.EligibilityResponse, error) {
	profile, err := s.profileRepo.FindDonorProfileByUserID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	result := algorithms.EvaluateEligibility(algorithms.DonorSnapshot{
		WeightKG:       profile.WeightKG,
		DateOfBirth:    profile.DateOfBirth,
		Vaccinated:     profile.Vaccinated,
		HealthStatus:   profile.HealthStatus,
		LastDonationAt: profile.LastDonationAt,
	}, time.Now())

	return &dto.EligibilityResponse{
		Eligible:       result.Eligible,
		FailedCriteria: result.FailedCriteria,
		NextEligibleAt: result.NextEligibleAt,
	}, nil
}

// NotifyMatchingDonors is best-effort: failures are logged, never
// surfaced to the request creator.
func (s *matchingService) NotifyMatchingDonors(request *models.BloodRequest) {
	donors, _, err := s.profileRepo.ListDonorProfiles(repositories.DonorCriteria{
		BloodGroup: request.BloodGroup,
	})
	if err != nil {
		logger.WithError(err).Error("match fan-out: list donors failed")
		return
	}

	for _, donor := range donors {
		if donor.UserID == request.UserID {
			continue
		}
		if err := s.notificationRepo.CreateMatchNotification(donor.UserID, request); err != nil {
			logger.WithError(err).Error("match fan-out: create notification failed")
			continue
		}
		if s.publisher != nil {
			s.publisher.PublishToUser(donor.UserID, map[string]interface{}{
				"type":        "match",
				"request_id":  request.ID,
				"blood_group": request.BloodGroup,
				"urgency":     request.Urgency,
				"city":        request.City,
			})
		}
	}
}
