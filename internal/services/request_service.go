package services

import (
	"errors"
	"time"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type RequestService interface {
	CreateRequest(userID string, req *dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error)
	GetRequest(id string) (*dto.BloodRequestResponse, error)
	ListUserRequests(userID string, criteria repositories.RequestCriteria) (*dto.BloodRequestListResponse, error)
	CancelRequest(userID, requestID string) error
	FulfilRequest(userID, requestID string, req *dto.FulfilRequestRequest) error
}

type requestService struct {
	requestRepo      repositories.BloodRequestRepository
	profileRepo      repositories.ProfileRepository
	donationRepo     repositories.DonationRepository
	notificationRepo repositories.NotificationRepository
	matchingService  MatchingService
}

func NewRequestService(
	requestRepo repositories.BloodRequestRepository,
	profileRepo repositories.ProfileRepository,
	donationRepo repositories.DonationRepository,
	notificationRepo repositories.NotificationRepository,
	matchingService MatchingService,
) RequestService {
	return &requestService{
		requestRepo:      requestRepo,
		profileRepo:      profileRepo,
		donationRepo:     donationRepo,
		notificationRepo: notificationRepo,
		matchingService:  matchingService,
	}
}

// CreateRequest posts a new blood request. Urgency, quantity, reason
// and clinic fall back to the patient profile defaults when left empty.
// After creation, donors with the matching blood group are notified.
func (s *requestService) CreateRequest(userID string, req *dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error) {
	request := &models.BloodRequest{
		UserID:       userID,
		DogName:      req.DogName,
		BloodGroup:   req.BloodGroup,
		City:         req.City,
		Urgency:      models.Urgency(req.Urgency),
		Quantity:     req.Quantity,
		Reason:       req.Reason,
		ClinicName:   req.ClinicName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Status:       models.RequestStatusPending,
	}

	if profile, err := s.profileRepo.FindPatientProfileByUserID(userID); err == nil {
		if request.Urgency == "" {
			request.Urgency = profile.DefaultUrgency
		}
		if request.Reason == "" {
			request.Reason = profile.DefaultReason
		}
		if request.Quantity == 0 {
			request.Quantity = profile.DefaultQuantity
		}
		if request.ClinicName == "" {
			request.ClinicName = profile.ClinicName
		}
		if request.ContactPhone == "" {
			request.ContactPhone = profile.Phone
		}
	}
	if request.Urgency == "" {
		request.Urgency = models.UrgencyWithin3Days
	}
	if request.Quantity == 0 {
		request.Quantity = 1
	}

	if err := s.requestRepo.CreateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Fan out match notifications; a failure here does not fail the
	// request itself.
	s.matchingService.NotifyMatchingDonors(request)

	return buildRequestResponse(request), nil
}

func (s *requestService) GetRequest(id string) (*dto.BloodRequestResponse, error) {
	request, err := s.requestRepo.FindRequestByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRequestResponse(request), nil
}

func (s *requestService) ListUserRequests(userID string, criteria repositories.RequestCriteria) (*dto.BloodRequestListResponse, error) {
	criteria.Page, criteria.PageSize = normalizePagination(criteria.Page, criteria.PageSize)

	requests, total, err := s.requestRepo.FindUserRequests(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.BloodRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, buildRequestResponse(&requests[i]))
	}
	return &dto.BloodRequestListResponse{
		Requests:   responses,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: calculateTotalPages(total, criteria.PageSize),
	}, nil
}

func (s *requestService) CancelRequest(userID, requestID string) error {
	request, err := s.requestRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if request.UserID != userID {
		return apperrors.NewForbiddenError("Not your request")
	}
	if request.Status.IsTerminal() {
		return apperrors.ErrInvalidStatus("request", "Request is already closed")
	}

	if err := s.requestRepo.UpdateStatus(requestID, models.RequestStatusCancelled); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// FulfilRequest closes the request, records the donation for the donor
// dog, resets the donor's cooldown clock and thanks them.
func (s *requestService) FulfilRequest(userID, requestID string, req *dto.FulfilRequestRequest) error {
	request, err := s.requestRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if request.UserID != userID {
		return apperrors.NewForbiddenError("Not your request")
	}
	if request.Status.IsTerminal() {
		return apperrors.ErrInvalidStatus("request", "Request is already closed")
	}

	if _, err := s.profileRepo.FindDonorProfileByUserID(req.DonorID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	now := time.Now()
	location := req.Location
	if location == "" {
		location = request.ClinicName
	}

	donation := &models.Donation{
		DonorID:   req.DonorID,
		RequestID: &request.ID,
		DonatedAt: now,
		VolumeML:  models.DonationVolumeML,
		Location:  location,
	}
	if err := s.donationRepo.CreateDonation(donation); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.profileRepo.SetLastDonation(req.DonorID, now); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.requestRepo.UpdateStatus(requestID, models.RequestStatusFulfilled); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.notificationRepo.CreateSystemNotification(
		req.DonorID,
		"Thank you for donating!",
		"Your donation for "+request.DogName+" has been recorded. You just helped save a life.",
	)
	return nil
}

func buildRequestResponse(request *models.BloodRequest) *dto.BloodRequestResponse {
	return &dto.BloodRequestResponse{
		ID:           request.ID,
		UserID:       request.UserID,
		DogName:      request.DogName,
		BloodGroup:   request.BloodGroup,
		City:         request.City,
		Urgency:      string(request.Urgency),
		Quantity:     request.Quantity,
		Reason:       request.Reason,
		ClinicName:   request.ClinicName,
		ContactPhone: request.ContactPhone,
		ContactEmail: request.ContactEmail,
		Status:       string(request.Status),
		CreatedAt:    request.CreatedAt,
	}
}
