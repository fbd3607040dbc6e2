package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleChatConnection godoc
// @Summary      Chat over WebSocket
// @Description  Not a plain HTTP API: connect with ws:// or wss://.
// @Description  Every text frame sent is a question; every frame received is a JSON chat message or {"error": "..."}.
// @Description  The optional token query parameter ties the connection to an account in the logs.
// @Tags         Chat
// @Param        token query string false "JWT from /login"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse "invalid token"
// @Router       /ws/chat [get]
func (h *Handler) HandleChatConnection(c *gin.Context) {
	username := "anonymous"
	if token := c.Query("token"); token != "" {
		claims, err := h.tokens.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token"})
			return
		}
		username = claims.Username
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Failed to upgrade to WebSocket", zap.String("username", username), zap.Error(err))
		return
	}

	conv := h.newConversation()
	log := h.log.Named("ws").With(zap.String("username", username))
	if err := conn.WriteJSON(conv.Messages()[0]); err != nil {
		log.Warn("Failed to send greeting", zap.Error(err))
		conn.Close()
		return
	}
	log.Info("Chat connection established")
	manageTextSession(c.Request.Context(), conn, conv, log)
}

// sendChatError writes an error frame; the connection stays open.
func sendChatError(conn *websocket.Conn, err error) error {
	return conn.WriteJSON(ErrorResponse{Error: err.Error()})
}
