package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/middleware"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/services"
	"k9hope_backend/internal/services/dto"
)

type DonationHandler struct {
	*BaseHandler
	donationService services.DonationService
}

func NewDonationHandler(base *BaseHandler, donationService services.DonationService) *DonationHandler {
	return &DonationHandler{
		BaseHandler:     base,
		donationService: donationService,
	}
}

func (h *DonationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	donorOnly := middleware.RequireRoles(models.UserRoleDonor)

	donations := rg.Group("/donations", donorOnly)
	{
		donations.POST("", h.RecordDonation)
		donations.GET("", h.GetHistory)
		donations.GET("/stats", h.GetStats)
	}
}

func (h *DonationHandler) RecordDonation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RecordDonationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.donationService.RecordDonation(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *DonationHandler) GetHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.donationService.GetDonationHistory(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *DonationHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.donationService.GetDonationStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
