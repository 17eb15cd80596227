package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/auth"
	"k9hope_backend/internal/handlers"
	"k9hope_backend/internal/middleware"
	"k9hope_backend/ws"
)

// RegisterRoutes wires the full HTTP surface under /api/v1, plus the
// websocket endpoint and a health check.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	wsManager *ws.Manager,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ws", ws.Handler(wsManager, tokens))

	v1 := router.Group("/api/v1")

	// Public endpoints
	appHandlers.Auth.RegisterRoutes(v1)

	// Authenticated endpoints
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.Profile.RegisterRoutes(authed)
		appHandlers.Request.RegisterRoutes(authed)
		appHandlers.Matching.RegisterRoutes(authed)
		appHandlers.Notification.RegisterRoutes(authed)
		appHandlers.Appointment.RegisterRoutes(authed)
		appHandlers.Donation.RegisterRoutes(authed)
		appHandlers.Chat.RegisterRoutes(authed)
		appHandlers.Upload.RegisterRoutes(authed)
	}
}
