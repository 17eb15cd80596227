package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/middleware"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/services/dto"
)

type fakeMatchingService struct {
	eligibilityCalls int
	feedCalls        int
}

func (f *fakeMatchingService) FindRequestsForDonor(donorID string, criteria dto.MatchCriteria) (*dto.MatchListResponse, error) {
	f.feedCalls++
	return &dto.MatchListResponse{Requests: []*dto.BloodRequestResponse{}}, nil
}

func (f *fakeMatchingService) CheckEligibility(donorID string) (*dto.EligibilityResponse, error) {
	f.eligibilityCalls++
	return &dto.EligibilityResponse{Eligible: true}, nil
}

func (f *fakeMatchingService) NotifyMatchingDonors(request *models.BloodRequest) {}

func newMatchingRouter(service *fakeMatchingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, "donor-1")
		c.Set(middleware.ContextRoleKey, models.UserRoleDonor)
	})
	handler := NewMatchingHandler(NewBaseHandler(), service)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestMatchingHandler_EligibilityRoute(t *testing.T) {
	service := &fakeMatchingService{}
	router := newMatchingRouter(service)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/donors/me/eligibility", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, service.eligibilityCalls)
	assert.Contains(t, recorder.Body.String(), `"eligible":true`)
}

func TestMatchingHandler_FeedRoute(t *testing.T) {
	service := &fakeMatchingService{}
	router := newMatchingRouter(service)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/matching/requests?urgent_only=true", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, service.feedCalls)
}
