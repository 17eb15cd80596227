package services

import (
	"errors"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateDonorProfile(userID string, req *dto.UpdateDonorProfileRequest) (*models.DonorProfile, error)
	UpdatePatientProfile(userID string, req *dto.UpdatePatientProfileRequest) (*models.PatientProfile, error)
	UpdateClinicProfile(userID string, req *dto.UpdateClinicProfileRequest) (*models.ClinicProfile, error)
	UpdateOrganisationProfile(userID string, req *dto.UpdateOrganisationProfileRequest) (*models.OrganisationProfile, error)
	CompleteOnboarding(userID string) error
}

type profileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *profileService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	response := &dto.ProfileResponse{
		Role:      string(user.Role),
		Onboarded: user.Onboarded,
	}

	switch user.Role {
	case models.UserRoleDonor:
		profile, err := s.profileRepo.FindDonorProfileByUserID(userID)
		if err != nil {
			return nil, s.profileError(err)
		}
		response.Donor = profile
	case models.UserRolePatient:
		profile, err := s.profileRepo.FindPatientProfileByUserID(userID)
		if err != nil {
			return nil, s.profileError(err)
		}
		response.Patient = profile
	case models.UserRoleVeterinary:
		profile, err := s.profileRepo.FindClinicProfileByUserID(userID)
		if err != nil {
			return nil, s.profileError(err)
		}
		response.Clinic = profile
	case models.UserRoleOrganisation:
		profile, err := s.profileRepo.FindOrganisationProfileByUserID(userID)
		if err != nil {
			return nil, s.profileError(err)
		}
		response.Organisation = profile
	}
	return response, nil
}

func (s *profileService) UpdateDonorProfile(userID string, req *dto.UpdateDonorProfileRequest) (*models.DonorProfile, error) {
	profile, err := s.profileRepo.FindDonorProfileByUserID(userID)
	if err != nil {
		return nil, s.profileError(err)
	}

	if req.DogName != nil {
		profile.DogName = *req.DogName
	}
	if req.BloodGroup != nil {
		profile.BloodGroup = *req.BloodGroup
	}
	if req.WeightKG != nil {
		profile.WeightKG = req.WeightKG
	}
	if req.DateOfBirth != nil {
		profile.DateOfBirth = req.DateOfBirth
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Region != nil {
		profile.Region = *req.Region
	}
	if req.Vaccinated != nil {
		profile.Vaccinated = req.Vaccinated
	}
	if req.HealthStatus != nil {
		profile.HealthStatus = *req.HealthStatus
	}
	if req.OnMedication != nil {
		profile.OnMedication = *req.OnMedication
	}
	if req.RecentDonation != nil {
		profile.RecentDonation = *req.RecentDonation
	}
	if req.SmokerExposed != nil {
		profile.SmokerExposed = *req.SmokerExposed
	}
	if req.AlcoholExposed != nil {
		profile.AlcoholExposed = *req.AlcoholExposed
	}

	if err := s.profileRepo.UpdateDonorProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) UpdatePatientProfile(userID string, req *dto.UpdatePatientProfileRequest) (*models.PatientProfile, error) {
	profile, err := s.profileRepo.FindPatientProfileByUserID(userID)
	if err != nil {
		return nil, s.profileError(err)
	}

	if req.DogName != nil {
		profile.DogName = *req.DogName
	}
	if req.BloodGroup != nil {
		profile.BloodGroup = *req.BloodGroup
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Region != nil {
		profile.Region = *req.Region
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.ClinicName != nil {
		profile.ClinicName = *req.ClinicName
	}
	if req.DefaultUrgency != nil {
		profile.DefaultUrgency = models.Urgency(*req.DefaultUrgency)
	}
	if req.DefaultReason != nil {
		profile.DefaultReason = *req.DefaultReason
	}
	if req.DefaultQuantity != nil {
		profile.DefaultQuantity = *req.DefaultQuantity
	}

	if err := s.profileRepo.UpdatePatientProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) UpdateClinicProfile(userID string, req *dto.UpdateClinicProfileRequest) (*models.ClinicProfile, error) {
	profile, err := s.profileRepo.FindClinicProfileByUserID(userID)
	if err != nil {
		return nil, s.profileError(err)
	}

	if req.ClinicName != nil {
		profile.ClinicName = *req.ClinicName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Services != nil {
		profile.Services = req.Services
	}

	if err := s.profileRepo.UpdateClinicProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) UpdateOrganisationProfile(userID string, req *dto.UpdateOrganisationProfileRequest) (*models.OrganisationProfile, error) {
	profile, err := s.profileRepo.FindOrganisationProfileByUserID(userID)
	if err != nil {
		return nil, s.profileError(err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.City != nil {
		profile.City = *req.City
	}

	if err := s.profileRepo.UpdateOrganisationProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) CompleteOnboarding(userID string) error {
	if err := s.userRepo.SetOnboarded(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) profileError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
