package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/middleware"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services"
	"k9hope_backend/internal/services/dto"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requesters := middleware.RequireRoles(
		models.UserRolePatient,
		models.UserRoleVeterinary,
		models.UserRoleOrganisation,
		models.UserRoleAdmin,
	)

	requests := rg.Group("/requests")
	{
		requests.POST("", requesters, h.CreateRequest)
		requests.GET("", requesters, h.ListMyRequests)
		requests.GET("/:id", h.GetRequest)
		requests.POST("/:id/cancel", requesters, h.CancelRequest)
		requests.POST("/:id/fulfil", requesters, h.FulfilRequest)
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBloodRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.requestService.CreateRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	criteria := repositories.RequestCriteria{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	response, err := h.requestService.ListUserRequests(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	response, err := h.requestService.GetRequest(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *RequestHandler) CancelRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.requestService.CancelRequest(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request cancelled"})
}

func (h *RequestHandler) FulfilRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FulfilRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.requestService.FulfilRequest(userID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request fulfilled"})
}
