/**
* Name: 			page_handler.go
* Description: 		Voice assistant, emergency and multi-language pages
* Workflow: 		open a page session -> trigger its simulated action -> read state
 */
package handler

import (
	"errors"
	"net/http"

	"LawHub_LegalAssistant/internal/emergency"
	"LawHub_LegalAssistant/internal/flight"
	"LawHub_LegalAssistant/internal/metrics"
	"LawHub_LegalAssistant/internal/multilang"
	"LawHub_LegalAssistant/internal/voice"

	"github.com/gin-gonic/gin"
)

type VoiceLanguagesResponse struct {
	Languages []voice.Language `json:"languages"`
}

type OpenConsoleRequest struct {
	Language string `json:"language" example:"ar"`
}

type ConsoleResponse struct {
	ID    string             `json:"id"`
	State voice.ConsoleState `json:"state"`
}

type ListenResponse struct {
	Transcript voice.Transcript   `json:"transcript"`
	State      voice.ConsoleState `json:"state"`
}

type EmergencyResponse struct {
	Contacts []emergency.Contact `json:"contacts"`
	Alerts   []emergency.Alert   `json:"alerts"`
}

type DeskResponse struct {
	ID    string              `json:"id"`
	State emergency.DeskState `json:"state"`
}

type LanguagesResponse struct {
	Languages []multilang.Language `json:"languages"`
}

func (h *Handler) countBusy(page string, err error) {
	if errors.Is(err, flight.ErrBusy) {
		metrics.BusyRejections.WithLabelValues(page).Inc()
	}
}

// VoiceLanguages godoc
// @Summary      Languages the voice assistant understands
// @Tags         Voice
// @Produce      json
// @Success      200 {object} handler.VoiceLanguagesResponse
// @Router       /api/voice/languages [get]
func (h *Handler) VoiceLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, VoiceLanguagesResponse{Languages: voice.Languages()})
}

// OpenConsole godoc
// @Summary      Open a voice console
// @Description  The language defaults to English.
// @Tags         Voice
// @Accept       json
// @Produce      json
// @Param        request body handler.OpenConsoleRequest false "language"
// @Success      201 {object} handler.ConsoleResponse
// @Failure      400 {object} handler.ErrorResponse "unknown language"
// @Router       /api/voice/consoles [post]
func (h *Handler) OpenConsole(c *gin.Context) {
	var req OpenConsoleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
			return
		}
	}
	console := voice.NewConsole(h.opts.TranscriptPicker, h.opts.TranscriptionDelay, h.log.Named("voice"))
	if req.Language != "" {
		if err := console.SetLanguage(req.Language); err != nil {
			h.respondError(c, err)
			return
		}
	}
	id := h.consoles.Put(console)
	c.JSON(http.StatusCreated, ConsoleResponse{ID: id, State: console.State()})
}

// GetConsole godoc
// @Summary      Voice console state and transcripts, newest first
// @Tags         Voice
// @Produce      json
// @Param        id path string true "console id"
// @Success      200 {object} handler.ConsoleResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/voice/consoles/{id} [get]
func (h *Handler) GetConsole(c *gin.Context) {
	id := c.Param("id")
	console, err := h.consoles.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ConsoleResponse{ID: id, State: console.State()})
}

// Listen godoc
// @Summary      Record and transcribe one question
// @Tags         Voice
// @Produce      json
// @Param        id path string true "console id"
// @Success      200 {object} handler.ListenResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "already listening"
// @Router       /api/voice/consoles/{id}/listen [post]
func (h *Handler) Listen(c *gin.Context) {
	console, err := h.consoles.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	tr, err := console.Listen(c.Request.Context())
	if err != nil {
		h.countBusy("voice", err)
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListenResponse{Transcript: tr, State: console.State()})
}

// EmergencyInfo godoc
// @Summary      Emergency contacts and active legal alerts
// @Tags         Emergency
// @Produce      json
// @Success      200 {object} handler.EmergencyResponse
// @Router       /api/emergency [get]
func (h *Handler) EmergencyInfo(c *gin.Context) {
	c.JSON(http.StatusOK, EmergencyResponse{Contacts: emergency.Contacts(), Alerts: emergency.Alerts()})
}

// OpenDesk godoc
// @Summary      Open an emergency location desk
// @Tags         Emergency
// @Produce      json
// @Success      201 {object} handler.DeskResponse
// @Router       /api/emergency/desks [post]
func (h *Handler) OpenDesk(c *gin.Context) {
	desk := emergency.NewDesk(h.opts.LocateDelay, h.log.Named("emergency"))
	id := h.desks.Put(desk)
	c.JSON(http.StatusCreated, DeskResponse{ID: id, State: desk.State()})
}

// Locate godoc
// @Summary      Detect the caller's location
// @Tags         Emergency
// @Produce      json
// @Param        id path string true "desk id"
// @Success      200 {object} handler.DeskResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "already locating"
// @Router       /api/emergency/desks/{id}/locate [post]
func (h *Handler) Locate(c *gin.Context) {
	id := c.Param("id")
	desk, err := h.desks.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if _, err := desk.Locate(c.Request.Context()); err != nil {
		h.countBusy("emergency", err)
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeskResponse{ID: id, State: desk.State()})
}

// Languages godoc
// @Summary      Supported languages with coverage tiers
// @Tags         Languages
// @Produce      json
// @Success      200 {object} handler.LanguagesResponse
// @Router       /api/languages [get]
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, LanguagesResponse{Languages: multilang.Languages()})
}

// LanguageSample godoc
// @Summary      Sample legal notice in a language
// @Description  Languages without a translation fall back to English.
// @Tags         Languages
// @Produce      json
// @Param        code path string true "language code"
// @Success      200 {object} multilang.Sample
// @Failure      400 {object} handler.ErrorResponse "unknown language"
// @Router       /api/languages/{code}/sample [get]
func (h *Handler) LanguageSample(c *gin.Context) {
	code := c.Param("code")
	if _, err := multilang.Lookup(code); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, multilang.SampleFor(code))
}
