package handler

import (
	"errors"
	"net/http"

	"LawHub_LegalAssistant/internal/document"
	"LawHub_LegalAssistant/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxUploadBody leaves room for the multipart framing around a file at the limit.
const maxUploadBody = document.MaxUploadSize + 1<<20

type DocumentResponse struct {
	ID    string             `json:"id"`
	State document.ScanState `json:"state"`
}

// UploadDocument godoc
// @Summary      Upload a document for analysis
// @Description  Accepts JPG, PNG or PDF up to 10MB. The file content is not stored.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "document"
// @Success      201 {object} handler.DocumentResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      413 {object} handler.ErrorResponse
// @Failure      415 {object} handler.ErrorResponse
// @Router       /api/documents [post]
func (h *Handler) UploadDocument(c *gin.Context) {
	if c.Request.ContentLength > maxUploadBody {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		h.respondError(c, document.ErrFileTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.DocumentUploads.WithLabelValues("rejected").Inc()
			h.respondError(c, document.ErrFileTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}

	scan := document.NewScan(h.opts.AnalysisDelay, h.log.Named("document"))
	err = scan.Attach(document.Upload{
		Filename:  fh.Filename,
		MediaType: fh.Header.Get("Content-Type"),
		Size:      fh.Size,
	})
	if err != nil {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		h.respondError(c, err)
		return
	}
	metrics.DocumentUploads.WithLabelValues("accepted").Inc()

	id := h.scans.Put(scan)
	c.JSON(http.StatusCreated, DocumentResponse{ID: id, State: scan.State()})
}

// GetDocument godoc
// @Summary      Upload and analysis state
// @Tags         Documents
// @Produce      json
// @Param        id path string true "scan id"
// @Success      200 {object} handler.DocumentResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *Handler) GetDocument(c *gin.Context) {
	id := c.Param("id")
	scan, err := h.scans.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DocumentResponse{ID: id, State: scan.State()})
}

// AnalyzeDocument godoc
// @Summary      Analyze the uploaded document
// @Tags         Documents
// @Produce      json
// @Param        id path string true "scan id"
// @Success      200 {object} document.Analysis
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "analysis already running"
// @Router       /api/documents/{id}/analysis [post]
func (h *Handler) AnalyzeDocument(c *gin.Context) {
	scan, err := h.scans.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	analysis, err := scan.Analyze(c.Request.Context())
	if err != nil {
		h.countBusy("document", err)
		h.log.Debug("Analysis not completed", zap.Error(err))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
