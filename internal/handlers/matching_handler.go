package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/middleware"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/services"
	"k9hope_backend/internal/services/dto"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	donorOnly := middleware.RequireRoles(models.UserRoleDonor)

	matching := rg.Group("/matching")
	{
		matching.GET("/requests", donorOnly, h.FindRequests)
	}

	donors := rg.Group("/donors")
	{
		donors.GET("/me/eligibility", donorOnly, h.CheckEligibility)
	}
}

// FindRequests is the donor's feed of open blood requests, filtered to
// their blood group and ordered by urgency or proximity.
func (h *MatchingHandler) FindRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.MatchCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	response, err := h.matchingService.FindRequestsForDonor(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *MatchingHandler) CheckEligibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.matchingService.CheckEligibility(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
