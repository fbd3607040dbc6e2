/**
* Name: 			handler.go
* Description: 		Gin handlers for every LawHub page and the shared error mapping
* Workflow: 		New (wire dependencies) -> RegisterRoutes -> per-route handlers -> respondError
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"LawHub_LegalAssistant/internal/auth"
	"LawHub_LegalAssistant/internal/chat"
	"LawHub_LegalAssistant/internal/document"
	"LawHub_LegalAssistant/internal/emergency"
	"LawHub_LegalAssistant/internal/flight"
	"LawHub_LegalAssistant/internal/laws"
	"LawHub_LegalAssistant/internal/multilang"
	"LawHub_LegalAssistant/internal/pagestore"
	"LawHub_LegalAssistant/internal/storage"
	"LawHub_LegalAssistant/internal/voice"
	"LawHub_LegalAssistant/internal/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options tunes the simulated pages. Zero delays make every page answer immediately.
type Options struct {
	PageTTL            time.Duration
	ChatReplyDelay     time.Duration
	AnalysisDelay      time.Duration
	TranscriptionDelay time.Duration
	LocateDelay        time.Duration

	// nil means random
	ReplyPicker      chat.Picker
	TranscriptPicker voice.Picker
}

type Handler struct {
	catalog *wizard.Catalog
	library *laws.Library
	store   *storage.Store
	tokens  *auth.TokenManager
	opts    Options
	log     *zap.Logger

	wizards  *pagestore.Store[*wizard.Session]
	scans    *pagestore.Store[*document.Scan]
	chats    *pagestore.Store[*chat.Conversation]
	consoles *pagestore.Store[*voice.Console]
	desks    *pagestore.Store[*emergency.Desk]
}

func New(catalog *wizard.Catalog, library *laws.Library, store *storage.Store, tokens *auth.TokenManager, opts Options, log *zap.Logger) *Handler {
	if opts.PageTTL <= 0 {
		opts.PageTTL = 30 * time.Minute
	}
	return &Handler{
		catalog:  catalog,
		library:  library,
		store:    store,
		tokens:   tokens,
		opts:     opts,
		log:      log,
		wizards:  pagestore.New[*wizard.Session](opts.PageTTL),
		scans:    pagestore.New[*document.Scan](opts.PageTTL),
		chats:    pagestore.New[*chat.Conversation](opts.PageTTL),
		consoles: pagestore.New[*voice.Console](opts.PageTTL),
		desks:    pagestore.New[*emergency.Desk](opts.PageTTL),
	}
}

// RegisterRoutes mounts every endpoint. authMW guards the account routes.
func (h *Handler) RegisterRoutes(r gin.IRouter, authMW gin.HandlerFunc) {
	r.GET("/health", h.Health)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/ws/chat", h.HandleChatConnection)

	api := r.Group("/api")
	api.GET("/status", h.Status)

	api.GET("/scenarios", h.ListScenarios)
	api.POST("/wizard/sessions", h.StartWizard)
	api.GET("/wizard/sessions/:id", h.GetWizard)
	api.POST("/wizard/sessions/:id/answers", h.SubmitAnswer)
	api.POST("/wizard/sessions/:id/back", h.GoBack)
	api.GET("/wizard/sessions/:id/solution", h.GetSolution)

	api.GET("/laws", h.SearchLaws)
	api.GET("/laws/filters", h.LawFilters)
	api.GET("/laws/:id", h.GetLaw)

	api.POST("/documents", h.UploadDocument)
	api.GET("/documents/:id", h.GetDocument)
	api.POST("/documents/:id/analysis", h.AnalyzeDocument)

	api.POST("/chat/conversations", h.OpenConversation)
	api.GET("/chat/conversations/:id", h.GetConversation)
	api.POST("/chat/conversations/:id/messages", h.SendMessage)
	api.POST("/ask", h.Ask)

	api.GET("/voice/languages", h.VoiceLanguages)
	api.POST("/voice/consoles", h.OpenConsole)
	api.GET("/voice/consoles/:id", h.GetConsole)
	api.POST("/voice/consoles/:id/listen", h.Listen)

	api.GET("/emergency", h.EmergencyInfo)
	api.POST("/emergency/desks", h.OpenDesk)
	api.POST("/emergency/desks/:id/locate", h.Locate)

	api.GET("/languages", h.Languages)
	api.GET("/languages/:code/sample", h.LanguageSample)

	api.POST("/training", h.AddTrainingExample)
	api.GET("/training/stats", h.TrainingStats)

	protected := api.Group("", authMW)
	protected.GET("/profile", h.Profile)
	protected.POST("/wizard/sessions/:id/save", h.SaveSolution)
	protected.GET("/history", h.History)
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid scenario"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, wizard.ErrInvalidScenario),
		errors.Is(err, wizard.ErrUnknownOption),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, multilang.ErrUnknownLanguage),
		errors.Is(err, storage.ErrIncompleteExample),
		errors.Is(err, storage.ErrUsernameExists):
		return http.StatusBadRequest
	case errors.Is(err, wizard.ErrNoActiveScenario),
		errors.Is(err, wizard.ErrSolutionReady),
		errors.Is(err, wizard.ErrSolutionNotReady),
		errors.Is(err, document.ErrNoDocument),
		errors.Is(err, flight.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, document.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, document.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, pagestore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	switch {
	case status == http.StatusInternalServerError:
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	case errors.Is(err, wizard.ErrInvalidScenario):
		// the picker only offers catalog ids, so this is a client bug
		h.log.Error("Unknown scenario requested", zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// Health godoc
// @Summary      Liveness probe
// @Tags         System
// @Produce      json
// @Success      200 {object} object{status=string}
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			h.log.Error("Database ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type StatusResponse struct {
	Status    string   `json:"status" example:"running"`
	Features  []string `json:"features"`
	Scenarios int      `json:"scenarios" example:"6"`
	Languages int      `json:"languages" example:"8"`
	Countries []string `json:"supported_countries"`
}

// Status godoc
// @Summary      Service status and feature list
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.StatusResponse
// @Router       /api/status [get]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status: "running",
		Features: []string{
			"situation_wizard", "law_explorer", "document_scan", "legal_chat",
			"rule_based_advice", "voice_assistant", "emergency", "multi_language", "training_data",
		},
		Scenarios: len(h.catalog.Scenarios()),
		Languages: len(multilang.Languages()),
		Countries: chat.SupportedCountries(),
	})
}
