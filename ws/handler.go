package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"k9hope_backend/internal/auth"
	"k9hope_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is open on the API; keep the socket consistent.
		return true
	},
}

// Handler upgrades /ws connections. Browsers cannot set headers on the
// websocket handshake, so the token rides in the query string.
func Handler(manager *Manager, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
			return
		}

		claims, err := tokens.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.WithError(err).Warn("ws upgrade failed")
			return
		}

		client := newClient(claims.UserID, conn, manager)
		manager.register <- client

		go client.writePump()
		go client.readPump()
	}
}
