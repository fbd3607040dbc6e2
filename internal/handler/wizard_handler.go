package handler

import (
	"net/http"

	"LawHub_LegalAssistant/internal/metrics"
	"LawHub_LegalAssistant/internal/middleware"
	"LawHub_LegalAssistant/internal/models"
	"LawHub_LegalAssistant/internal/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScenariosResponse struct {
	Scenarios []wizard.Scenario `json:"scenarios"`
}

type StartWizardRequest struct {
	ScenarioID string `json:"scenario_id" binding:"required" example:"arrested"`
}

type AnswerRequest struct {
	Option string `json:"option" binding:"required" example:"Police Station"`
}

type WizardResponse struct {
	ID         string             `json:"id"`
	State      wizard.State       `json:"state"`
	Transition *wizard.Transition `json:"transition,omitempty"`
	// set when going back past the first step ended the session
	Discarded bool `json:"discarded,omitempty"`
}

type SolutionResponse struct {
	ScenarioID string          `json:"scenario_id"`
	Answers    []string        `json:"answers"`
	Solution   models.Solution `json:"solution"`
}

type HistoryResponse struct {
	History []models.SavedSolution `json:"history"`
}

// ListScenarios godoc
// @Summary      Scenario picker
// @Tags         Wizard
// @Produce      json
// @Success      200 {object} handler.ScenariosResponse
// @Router       /api/scenarios [get]
func (h *Handler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, ScenariosResponse{Scenarios: h.catalog.Scenarios()})
}

// StartWizard godoc
// @Summary      Start a wizard session for a scenario
// @Tags         Wizard
// @Accept       json
// @Produce      json
// @Param        request body handler.StartWizardRequest true "chosen scenario"
// @Success      201 {object} handler.WizardResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/wizard/sessions [post]
func (h *Handler) StartWizard(c *gin.Context) {
	var req StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "scenario_id is required"})
		return
	}
	s := wizard.NewSession(h.catalog)
	if err := s.SelectScenario(req.ScenarioID); err != nil {
		h.respondError(c, err)
		return
	}
	id := h.wizards.Put(s)
	c.JSON(http.StatusCreated, WizardResponse{ID: id, State: s.State()})
}

func (h *Handler) wizardSession(c *gin.Context) (string, *wizard.Session, bool) {
	id := c.Param("id")
	s, err := h.wizards.Get(id)
	if err != nil {
		h.respondError(c, err)
		return "", nil, false
	}
	return id, s, true
}

// GetWizard godoc
// @Summary      Current question of a wizard session
// @Tags         Wizard
// @Produce      json
// @Param        id path string true "session id"
// @Success      200 {object} handler.WizardResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/wizard/sessions/{id} [get]
func (h *Handler) GetWizard(c *gin.Context) {
	id, s, ok := h.wizardSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, WizardResponse{ID: id, State: s.State()})
}

// SubmitAnswer godoc
// @Summary      Answer the current question
// @Tags         Wizard
// @Accept       json
// @Produce      json
// @Param        id      path string                true "session id"
// @Param        request body handler.AnswerRequest true "chosen option"
// @Success      200 {object} handler.WizardResponse
// @Failure      400 {object} handler.ErrorResponse "unknown option"
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "solution already reached"
// @Router       /api/wizard/sessions/{id}/answers [post]
func (h *Handler) SubmitAnswer(c *gin.Context) {
	id, s, ok := h.wizardSession(c)
	if !ok {
		return
	}
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "option is required"})
		return
	}
	t, err := s.SubmitAnswer(req.Option)
	if err != nil {
		h.respondError(c, err)
		return
	}
	st := s.State()
	if t.Kind == wizard.TransitionFinish {
		metrics.WizardCompletions.WithLabelValues(st.ScenarioID).Inc()
	}
	c.JSON(http.StatusOK, WizardResponse{ID: id, State: st, Transition: &t})
}

// GoBack godoc
// @Summary      Undo the last answer
// @Description  At the first question this ends the session.
// @Tags         Wizard
// @Produce      json
// @Param        id path string true "session id"
// @Success      200 {object} handler.WizardResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/wizard/sessions/{id}/back [post]
func (h *Handler) GoBack(c *gin.Context) {
	id, s, ok := h.wizardSession(c)
	if !ok {
		return
	}
	s.GoBack()
	st := s.State()
	resp := WizardResponse{ID: id, State: st}
	if st.ScenarioID == "" {
		h.wizards.Delete(id)
		resp.Discarded = true
	}
	c.JSON(http.StatusOK, resp)
}

// GetSolution godoc
// @Summary      Solution for a finished wizard session
// @Tags         Wizard
// @Produce      json
// @Param        id path string true "session id"
// @Success      200 {object} handler.SolutionResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "questions remain"
// @Router       /api/wizard/sessions/{id}/solution [get]
func (h *Handler) GetSolution(c *gin.Context) {
	_, s, ok := h.wizardSession(c)
	if !ok {
		return
	}
	sol, err := s.ResolveSolution()
	if err != nil {
		h.respondError(c, err)
		return
	}
	st := s.State()
	c.JSON(http.StatusOK, SolutionResponse{ScenarioID: st.ScenarioID, Answers: st.Answers, Solution: sol})
}

// SaveSolution godoc
// @Summary      Save a finished wizard session to the user's history
// @Tags         Wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "session id"
// @Success      201 {object} models.SavedSolution
// @Failure      401 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "questions remain"
// @Router       /api/wizard/sessions/{id}/save [post]
func (h *Handler) SaveSolution(c *gin.Context) {
	_, s, ok := h.wizardSession(c)
	if !ok {
		return
	}
	sol, err := s.ResolveSolution()
	if err != nil {
		h.respondError(c, err)
		return
	}
	st := s.State()
	userID := c.GetInt(middleware.ContextUserID)
	saved, err := h.store.SaveSolution(userID, st.ScenarioID, st.Answers, sol)
	if err != nil {
		h.log.Error("Failed to save solution", zap.Int("user_id", userID), zap.Error(err))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// History godoc
// @Summary      Saved solutions of the logged-in user, newest first
// @Tags         Wizard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.HistoryResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/history [get]
func (h *Handler) History(c *gin.Context) {
	saved, err := h.store.ListSolutions(c.GetInt(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: saved})
}
