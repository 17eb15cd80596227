package repositories

import (
	"errors"

	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var ErrDonationNotFound = errors.New("donation not found")

type DonationRepository interface {
	CreateDonation(donation *models.Donation) error
	FindDonorDonations(donorID string) ([]models.Donation, error)
	CountDonorDonations(donorID string) (int64, error)
	SumDonorVolume(donorID string) (int64, error)
}

type DonationRepositoryImpl struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &DonationRepositoryImpl{db: db}
}

func (r *DonationRepositoryImpl) CreateDonation(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

func (r *DonationRepositoryImpl) FindDonorDonations(donorID string) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Where("donor_id = ?", donorID).
		Order("donated_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *DonationRepositoryImpl) CountDonorDonations(donorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Donation{}).Where("donor_id = ?", donorID).Count(&count).Error
	return count, err
}

func (r *DonationRepositoryImpl) SumDonorVolume(donorID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Donation{}).Where("donor_id = ?", donorID).
		Select("COALESCE(SUM(volume_ml), 0)").
		Scan(&total).Error
	return total, err
}
