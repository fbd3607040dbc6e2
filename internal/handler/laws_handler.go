package handler

import (
	"net/http"
	"strconv"

	"LawHub_LegalAssistant/internal/laws"

	"github.com/gin-gonic/gin"
)

type LawsResponse struct {
	Articles []laws.Article `json:"articles"`
	Count    int            `json:"count"`
}

type LawFiltersResponse struct {
	Countries []laws.Option `json:"countries"`
	Topics    []laws.Option `json:"topics"`
}

// SearchLaws godoc
// @Summary      Search the law library
// @Description  Empty filters match everything; "all" disables the country or topic filter.
// @Tags         Laws
// @Produce      json
// @Param        q       query string false "text searched in title and summary"
// @Param        country query string false "country code or all"
// @Param        topic   query string false "topic or all"
// @Success      200 {object} handler.LawsResponse
// @Router       /api/laws [get]
func (h *Handler) SearchLaws(c *gin.Context) {
	var f laws.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter"})
		return
	}
	articles := h.library.Search(f)
	c.JSON(http.StatusOK, LawsResponse{Articles: articles, Count: len(articles)})
}

// LawFilters godoc
// @Summary      Country and topic picker lists
// @Tags         Laws
// @Produce      json
// @Success      200 {object} handler.LawFiltersResponse
// @Router       /api/laws/filters [get]
func (h *Handler) LawFilters(c *gin.Context) {
	c.JSON(http.StatusOK, LawFiltersResponse{Countries: h.library.Countries, Topics: h.library.Topics})
}

// GetLaw godoc
// @Summary      One law article
// @Tags         Laws
// @Produce      json
// @Param        id path int true "article id"
// @Success      200 {object} laws.Article
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/laws/{id} [get]
func (h *Handler) GetLaw(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid article id"})
		return
	}
	a, ok := h.library.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}
