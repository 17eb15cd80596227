package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var ErrRequestNotFound = errors.New("blood request not found")

type BloodRequestRepository interface {
	CreateRequest(request *models.BloodRequest) error
	FindRequestByID(id string) (*models.BloodRequest, error)
	FindOpenRequests() ([]models.BloodRequest, error)
	FindUserRequests(userID string, criteria RequestCriteria) ([]models.BloodRequest, int64, error)
	UpdateRequest(request *models.BloodRequest) error
	UpdateStatus(id string, status models.RequestStatus) error
	FindStalePending(cutoff time.Time) ([]models.BloodRequest, error)
}

// RequestCriteria filters a user's own request listing.
type RequestCriteria struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type BloodRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewBloodRequestRepository(db *gorm.DB) BloodRequestRepository {
	return &BloodRequestRepositoryImpl{db: db}
}

func (r *BloodRequestRepositoryImpl) CreateRequest(request *models.BloodRequest) error {
	return r.db.Create(request).Error
}

func (r *BloodRequestRepositoryImpl) FindRequestByID(id string) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindOpenRequests returns every pending request, newest first. The
// matcher filters and re-orders in memory.
func (r *BloodRequestRepositoryImpl) FindOpenRequests() ([]models.BloodRequest, error) {
	var requests []models.BloodRequest
	err := r.db.Where("status = ?", models.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *BloodRequestRepositoryImpl) FindUserRequests(userID string, criteria RequestCriteria) ([]models.BloodRequest, int64, error) {
	var requests []models.BloodRequest
	query := r.db.Model(&models.BloodRequest{}).Where("user_id = ?", userID)

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
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

	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, total, err
}

func (r *BloodRequestRepositoryImpl) UpdateRequest(request *models.BloodRequest) error {
	return r.db.Save(request).Error
}

func (r *BloodRequestRepositoryImpl) UpdateStatus(id string, status models.RequestStatus) error {
	result := r.db.Model(&models.BloodRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// FindStalePending returns pending requests created before the cutoff.
// The caller cancels them one by one so each owner can be told.
func (r *BloodRequestRepositoryImpl) FindStalePending(cutoff time.Time) ([]models.BloodRequest, error) {
	var requests []models.BloodRequest
	err := r.db.Where("status = ? AND created_at < ?", models.RequestStatusPending, cutoff).
		Find(&requests).Error
	return requests, err
}
