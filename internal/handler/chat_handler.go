package handler

import (
	"net/http"
	"strings"

	"LawHub_LegalAssistant/internal/chat"
	"LawHub_LegalAssistant/internal/metrics"

	"github.com/gin-gonic/gin"
)

type ConversationResponse struct {
	ID       string         `json:"id"`
	Messages []chat.Message `json:"messages"`
	Typing   bool           `json:"typing"`
}

type SendMessageRequest struct {
	Text string `json:"text" example:"Can I drink alcohol in public in UAE?"`
}

type SendMessageResponse struct {
	Reply    chat.Message   `json:"reply"`
	Messages []chat.Message `json:"messages"`
}

type AskRequest struct {
	Question string `json:"question" example:"I lost my passport in Singapore"`
	Country  string `json:"country" example:"Singapore"`
}

func (h *Handler) newConversation() *chat.Conversation {
	return chat.NewConversation(
		chat.NewCannedResponder(h.opts.ReplyPicker),
		h.opts.ChatReplyDelay,
		h.log.Named("chat"),
	)
}

// OpenConversation godoc
// @Summary      Open a chat conversation
// @Description  The conversation starts with the LawBot greeting.
// @Tags         Chat
// @Produce      json
// @Success      201 {object} handler.ConversationResponse
// @Router       /api/chat/conversations [post]
func (h *Handler) OpenConversation(c *gin.Context) {
	conv := h.newConversation()
	id := h.chats.Put(conv)
	c.JSON(http.StatusCreated, ConversationResponse{ID: id, Messages: conv.Messages()})
}

// GetConversation godoc
// @Summary      Messages of a conversation
// @Tags         Chat
// @Produce      json
// @Param        id path string true "conversation id"
// @Success      200 {object} handler.ConversationResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/chat/conversations/{id} [get]
func (h *Handler) GetConversation(c *gin.Context) {
	id := c.Param("id")
	conv, err := h.chats.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ConversationResponse{ID: id, Messages: conv.Messages(), Typing: conv.Typing()})
}

// SendMessage godoc
// @Summary      Send a message and wait for the bot's reply
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "conversation id"
// @Param        request body handler.SendMessageRequest true "message"
// @Success      200 {object} handler.SendMessageResponse
// @Failure      400 {object} handler.ErrorResponse "empty message"
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "reply pending"
// @Router       /api/chat/conversations/{id}/messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	conv, err := h.chats.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	reply, err := conv.Send(c.Request.Context(), req.Text)
	if err != nil {
		h.countBusy("chat", err)
		h.respondError(c, err)
		return
	}
	metrics.ChatMessages.Inc()
	c.JSON(http.StatusOK, SendMessageResponse{Reply: reply, Messages: conv.Messages()})
}

// Ask godoc
// @Summary      Rule-based legal advice
// @Description  Classifies the question by keyword and returns an action plan.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body handler.AskRequest true "question"
// @Success      200 {object} chat.Advice
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/ask [post]
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		h.respondError(c, chat.ErrEmptyMessage)
		return
	}
	c.JSON(http.StatusOK, chat.Advise(req.Question, req.Country))
}
