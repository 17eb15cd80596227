package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/services"
	"k9hope_backend/internal/services/dto"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.SendMessage)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.ChatRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.chatService.SendMessage(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
