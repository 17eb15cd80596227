package services

import (
	"errors"
	"time"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type DonationService interface {
	RecordDonation(donorID string, req *dto.RecordDonationRequest) (*dto.DonationResponse, error)
	GetDonationHistory(donorID string) ([]*dto.DonationResponse, error)
	GetDonationStats(donorID string) (*dto.DonationStatsResponse, error)
}

type donationService struct {
	donationRepo repositories.DonationRepository
	profileRepo  repositories.ProfileRepository
}

func NewDonationService(
	donationRepo repositories.DonationRepository,
	profileRepo repositories.ProfileRepository,
) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		profileRepo:  profileRepo,
	}
}

// RecordDonation logs a donation made outside the request flow (e.g. a
// blood bank drive) and restarts the donor's cooldown.
func (s *donationService) RecordDonation(donorID string, req *dto.RecordDonationRequest) (*dto.DonationResponse, error) {
	if req.DonatedAt.After(time.Now()) {
		return nil, apperrors.NewBadRequestError("Donation date cannot be in the future")
	}

	profile, err := s.profileRepo.FindDonorProfileByUserID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	donation := &models.Donation{
		DonorID:   donorID,
		DonatedAt: req.DonatedAt,
		VolumeML:  models.DonationVolumeML,
		Location:  req.Location,
	}
	if req.RequestID != "" {
		donation.RequestID = &req.RequestID
	}

	if err := s.donationRepo.CreateDonation(donation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// A back-dated entry must not rewind the cooldown clock.
	if profile.LastDonationAt == nil || req.DonatedAt.After(*profile.LastDonationAt) {
		if err := s.profileRepo.SetLastDonation(donorID, req.DonatedAt); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return buildDonationResponse(donation), nil
}

func (s *donationService) GetDonationHistory(donorID string) ([]*dto.DonationResponse, error) {
	donations, err := s.donationRepo.FindDonorDonations(donorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.DonationResponse, 0, len(donations))
	for i := range donations {
		responses = append(responses, buildDonationResponse(&donations[i]))
	}
	return responses, nil
}

func (s *donationService) GetDonationStats(donorID string) (*dto.DonationStatsResponse, error) {
	count, err := s.donationRepo.CountDonorDonations(donorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	volume, err := s.donationRepo.SumDonorVolume(donorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DonationStatsResponse{
		TotalDonations: count,
		TotalVolumeML:  volume,
		LivesSaved:     count * models.LivesPerDonation,
	}, nil
}

func buildDonationResponse(donation *models.Donation) *dto.DonationResponse {
	response := &dto.DonationResponse{
		ID:        donation.ID,
		DonatedAt: donation.DonatedAt,
		VolumeML:  donation.VolumeML,
		Location:  donation.Location,
	}
	if donation.RequestID != nil {
		response.RequestID = *donation.RequestID
	}
	return response
}
