package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/services"
	"k9hope_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documents := rg.Group("/documents")
	{
		documents.POST("", h.UploadDocument)
		documents.GET("", h.ListDocuments)
		documents.GET("/:id/download", h.DownloadDocument)
		documents.DELETE("/:id", h.DeleteDocument)
	}
}

// UploadDocument accepts a multipart form with fields "file" and
// "request_id".
func (h *UploadHandler) UploadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requestID := c.PostForm("request_id")
	if requestID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("request_id is required"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	response, err := h.uploadService.UploadDocument(c.Request.Context(), userID, requestID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *UploadHandler) ListDocuments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.uploadService.ListUserDocuments(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *UploadHandler) DownloadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reader, document, err := h.uploadService.OpenDocument(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", "attachment; filename=\""+document.FileName+"\"")
	c.DataFromReader(http.StatusOK, document.SizeBytes, document.ContentType, reader, nil)
}

func (h *UploadHandler) DeleteDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.uploadService.DeleteDocument(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
