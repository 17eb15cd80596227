package repositories

import (
	"errors"

	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	CreateDocument(document *models.Document) error
	FindDocumentByID(id string) (*models.Document, error)
	FindUserDocuments(userID string) ([]models.Document, error)
	DeleteDocument(id string) error
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) CreateDocument(document *models.Document) error {
	return r.db.Create(document).Error
}

func (r *DocumentRepositoryImpl) FindDocumentByID(id string) (*models.Document, error) {
	var document models.Document
	err := r.db.First(&document, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) FindUserDocuments(userID string) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) DeleteDocument(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
