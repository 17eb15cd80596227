package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository manages the role-specific profile tables. Every
// user has at most one profile matching their role.
type ProfileRepository interface {
	// Donor profiles
	CreateDonorProfile(profile *models.DonorProfile) error
	FindDonorProfileByUserID(userID string) (*models.DonorProfile, error)
	UpdateDonorProfile(profile *models.DonorProfile) error
	ListDonorProfiles(criteria DonorCriteria) ([]models.DonorProfile, int64, error)
	SetLastDonation(userID string, at time.Time) error

	// Patient profiles
	CreatePatientProfile(profile *models.PatientProfile) error
	FindPatientProfileByUserID(userID string) (*models.PatientProfile, error)
	UpdatePatientProfile(profile *models.PatientProfile) error

	// Clinic profiles
	CreateClinicProfile(profile *models.ClinicProfile) error
	FindClinicProfileByUserID(userID string) (*models.ClinicProfile, error)
	UpdateClinicProfile(profile *models.ClinicProfile) error

	// Organisation profiles
	CreateOrganisationProfile(profile *models.OrganisationProfile) error
	FindOrganisationProfileByUserID(userID string) (*models.OrganisationProfile, error)
	UpdateOrganisationProfile(profile *models.OrganisationProfile) error
}

// DonorCriteria narrows donor listings for matching fan-out.
type DonorCriteria struct {
	BloodGroup string `form:"blood_group"`
	City       string `form:"city"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Donor profiles

func (r *ProfileRepositoryImpl) CreateDonorProfile(profile *models.DonorProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindDonorProfileByUserID(userID string) (*models.DonorProfile, error) {
	var profile models.DonorProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateDonorProfile(profile *models.DonorProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) ListDonorProfiles(criteria DonorCriteria) ([]models.DonorProfile, int64, error) {
	var profiles []models.DonorProfile
	query := r.db.Model(&models.DonorProfile{})

	if criteria.BloodGroup != "" {
		query = query.Where("blood_group = ?", criteria.BloodGroup)
	}
	if criteria.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", criteria.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.PageSize > 0 {
		offset := 0
		if criteria.Page > 1 {
			offset = (criteria.Page - 1) * criteria.PageSize
		}
		query = query.Limit(criteria.PageSize).Offset(offset)
	}

	err := query.Order("created_at DESC").Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) SetLastDonation(userID string, at time.Time) error {
	result := r.db.Model(&models.DonorProfile{}).Where("user_id = ?", userID).
		Update("last_donation_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Patient profiles

func (r *ProfileRepositoryImpl) CreatePatientProfile(profile *models.PatientProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindPatientProfileByUserID(userID string) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdatePatientProfile(profile *models.PatientProfile) error {
	return r.db.Save(profile).Error
}

// Clinic profiles

func (r *ProfileRepositoryImpl) CreateClinicProfile(profile *models.ClinicProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindClinicProfileByUserID(userID string) (*models.ClinicProfile, error) {
	var profile models.ClinicProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateClinicProfile(profile *models.ClinicProfile) error {
	return r.db.Save(profile).Error
}

// Organisation profiles

func (r *ProfileRepositoryImpl) CreateOrganisationProfile(profile *models.OrganisationProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindOrganisationProfileByUserID(userID string) (*models.OrganisationProfile, error) {
	var profile models.OrganisationProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateOrganisationProfile(profile *models.OrganisationProfile) error {
	return r.db.Save(profile).Error
}
