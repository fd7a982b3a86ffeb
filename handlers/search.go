package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Denys1771/hifi-backend/services"
	"github.com/Denys1771/hifi-backend/types"
)

// SearchHandler handles both search endpoint families.
type SearchHandler struct {
	resolver *services.Resolver
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(resolver *services.Resolver) *SearchHandler {
	return &SearchHandler{resolver: resolver}
}

// SearchLegacy is the original POST search: JSON body with a query string,
// Spanish-field tracks, engine failures surfaced as 500. Zero matches is a
// 200 with an empty track list.
func (h *SearchHandler) SearchLegacy(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query is required",
		})
		return
	}

	tracks, err := h.resolver.Search(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "search failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.SearchResponse{Tracks: tracks})
}

// SearchCatalog is the GET search: query parameter q, enveloped response,
// engine failures degraded to an empty result set. Artist and album search
// are not implemented; those lists are always empty.
func (h *SearchHandler) SearchCatalog(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter 'q' is required",
		})
		return
	}
	// type is accepted for client compatibility; only track search exists.
	_ = c.DefaultQuery("type", "track")

	tracks := h.resolver.SearchCatalog(c.Request.Context(), query)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"tracks":  tracks,
			"artists": []any{},
			"albums":  []any{},
		},
	})
}
