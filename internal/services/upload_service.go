package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/internal/storage"
	"k9hope_backend/pkg/apperrors"
)

const maxDocumentSize = 10 << 20 // 10 MiB

var allowedDocumentExtensions = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type UploadService interface {
	// UploadDocument stores a veterinary recommendation letter for a
	// blood request.
	UploadDocument(ctx context.Context, userID, requestID string, file *multipart.FileHeader) (*dto.DocumentResponse, error)
	ListUserDocuments(ctx context.Context, userID string) ([]*dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
	OpenDocument(ctx context.Context, userID, documentID string) (io.ReadCloser, *models.Document, error)
}

type uploadService struct {
	documentRepo repositories.DocumentRepository
	requestRepo  repositories.BloodRequestRepository
	store        storage.Storage
}

func NewUploadService(
	documentRepo repositories.DocumentRepository,
	requestRepo repositories.BloodRequestRepository,
	store storage.Storage,
) UploadService {
	return &uploadService{
		documentRepo: documentRepo,
		requestRepo:  requestRepo,
		store:        store,
	}
}

func (s *uploadService) UploadDocument(ctx context.Context, userID, requestID string, file *multipart.FileHeader) (*dto.DocumentResponse, error) {
	if file.Size > maxDocumentSize {
		return nil, apperrors.NewBadRequestError("File exceeds the 10 MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedDocumentExtensions[ext]
	if !ok {
		return nil, apperrors.NewBadRequestError("Only PDF, JPEG and PNG files are accepted")
	}

	request, err := s.requestRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if request.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not your request")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	storagePath := fmt.Sprintf("documents/%s/%s%s", requestID, uuid.NewString(), ext)
	if err := s.store.Save(ctx, storagePath, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	document := &models.Document{
		UserID:      userID,
		RequestID:   requestID,
		FileName:    file.Filename,
		StoragePath: storagePath,
		ContentType: contentType,
		SizeBytes:   file.Size,
	}
	if err := s.documentRepo.CreateDocument(document); err != nil {
		// Orphaned blob; best effort cleanup.
		_ = s.store.Delete(ctx, storagePath)
		return nil, apperrors.InternalError(err)
	}

	return s.buildDocumentResponse(ctx, document), nil
}

func (s *uploadService) ListUserDocuments(ctx context.Context, userID string) ([]*dto.DocumentResponse, error) {
	documents, err := s.documentRepo.FindUserDocuments(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, s.buildDocumentResponse(ctx, &documents[i]))
	}
	return responses, nil
}

func (s *uploadService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	document, err := s.documentRepo.FindDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if document.UserID != userID {
		return apperrors.NewForbiddenError("Not your document")
	}

	if err := s.documentRepo.DeleteDocument(documentID); err != nil {
		return apperrors.InternalError(err)
	}
	_ = s.store.Delete(ctx, document.StoragePath)
	return nil
}

func (s *uploadService) OpenDocument(ctx context.Context, userID, documentID string) (io.ReadCloser, *models.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}
	if document.UserID != userID {
		return nil, nil, apperrors.NewForbiddenError("Not your document")
	}

	reader, err := s.store.Get(ctx, document.StoragePath)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return reader, document, nil
}

func (s *uploadService) buildDocumentResponse(ctx context.Context, document *models.Document) *dto.DocumentResponse {
	response := &dto.DocumentResponse{
		ID:          document.ID,
		RequestID:   document.RequestID,
		FileName:    document.FileName,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		CreatedAt:   document.CreatedAt,
	}
	if url, err := s.store.GetSignedURL(ctx, document.StoragePath, 15*time.Minute); err == nil {
		response.URL = url
	}
	return response
}
