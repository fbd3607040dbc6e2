package handler

import (
	"net/http"

	"LawHub_LegalAssistant/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrainingRequest struct {
	Question string `json:"question" example:"What should I do if I lose my passport?"`
	Answer   string `json:"answer" example:"Report it to the police and contact your embassy."`
	Country  string `json:"country" example:"India"`
	Category string `json:"category" example:"Criminal"`
}

// AddTrainingExample godoc
// @Summary      Store a question/answer pair for the assistant
// @Description  Country and category default to General.
// @Tags         Training
// @Accept       json
// @Produce      json
// @Param        request body handler.TrainingRequest true "example"
// @Success      201 {object} models.TrainingExample
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/training [post]
func (h *Handler) AddTrainingExample(c *gin.Context) {
	var req TrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	ex, err := h.store.AddTrainingExample(models.TrainingExample{
		Question: req.Question,
		Answer:   req.Answer,
		Country:  req.Country,
		Category: req.Category,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.log.Info("Training example stored", zap.Int("id", ex.ID), zap.String("country", ex.Country), zap.String("category", ex.Category))
	c.JSON(http.StatusCreated, ex)
}

// TrainingStats godoc
// @Summary      Counts of stored training examples
// @Tags         Training
// @Produce      json
// @Success      200 {object} models.TrainingStats
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/training/stats [get]
func (h *Handler) TrainingStats(c *gin.Context) {
	stats, err := h.store.TrainingStats()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
