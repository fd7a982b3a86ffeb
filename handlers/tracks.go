package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Denys1771/hifi-backend/services"
)

// TrackHandler handles single-track lookup and stream URL endpoints.
type TrackHandler struct {
	resolver *services.Resolver
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(resolver *services.Resolver) *TrackHandler {
	return &TrackHandler{resolver: resolver}
}

// GetTrack resolves one video identifier into a track detail. An entry
// without a playable URL is a 404, unlike search where it is dropped.
func (h *TrackHandler) GetTrack(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.resolver.Lookup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNoAudio) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no audio url found for track",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "track lookup failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"track": detail,
		},
	})
}

// Stream returns the best-bitrate audio URL for direct playback. The URL is
// whatever the engine handed out; no expiry bookkeeping is done on it.
func (h *TrackHandler) Stream(c *gin.Context) {
	id := c.Param("id")
	quality := c.DefaultQuery("quality", "high")

	url, err := h.resolver.StreamURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNoAudio) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no stream url found for track",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "stream resolution failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"stream_url": url,
			"quality":    quality,
			"expires_at": nil,
		},
	})
}

// Download returns the same best-bitrate URL shaped for download clients.
func (h *TrackHandler) Download(c *gin.Context) {
	id := c.Param("id")
	quality := c.DefaultQuery("quality", "high")

	url, err := h.resolver.StreamURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNoAudio) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no download url found for track",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "download resolution failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"download_url": url,
			"quality":      quality,
			"file_size":    nil,
			"expires_at":   nil,
		},
	})
}
