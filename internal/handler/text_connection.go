package handler

import (
	"context"

	"LawHub_LegalAssistant/internal/chat"
	"LawHub_LegalAssistant/internal/metrics"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// manageTextSession answers each text frame with the conversation's bot reply
// until the client disconnects.
func manageTextSession(parent context.Context, conn *websocket.Conn, conv *chat.Conversation, log *zap.Logger) {
	defer conn.Close()
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("Error reading message", zap.Error(err))
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			log.Debug("Unsupported message type", zap.Int("type", messageType))
			continue
		}

		reply, err := conv.Send(ctx, string(message))
		if err != nil {
			if werr := sendChatError(conn, err); werr != nil {
				log.Warn("Error sending message", zap.Error(werr))
				break ReadLoop
			}
			continue
		}
		metrics.ChatMessages.Inc()
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("Error sending message", zap.Error(err))
			break ReadLoop
		}
	}
	log.Info("Chat connection closed", zap.Int("messages", len(conv.Messages())))
}
