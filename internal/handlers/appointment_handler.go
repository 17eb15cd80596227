package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/services"
	"k9hope_backend/internal/services/dto"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler:        base,
		appointmentService: appointmentService,
	}
}

func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.appointmentService.CreateAppointment(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.AppointmentCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	response, err := h.appointmentService.ListUserAppointments(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.appointmentService.UpdateStatus(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
