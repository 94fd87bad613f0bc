package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ftr-labs/fliphq/internal/models"
	"github.com/ftr-labs/fliphq/internal/services"
)

type ScanHandler struct {
	scan *services.ScanService
}

func NewScanHandler(scan *services.ScanService) *ScanHandler {
	return &ScanHandler{scan: scan}
}

// Scan charges one token and searches for secondhand spots near the caller.
// The token is refunded when the search errors or finds nothing.
func (h *ScanHandler) Scan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scan.Scan(c.Request.Context(), req.Lat, req.Lng)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientTokens) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "insufficient tokens"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Cached returns the last successful results near a position without
// charging a token
func (h *ScanHandler) Cached(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lng"})
		return
	}

	spots, ok := h.scan.Cached(lat, lng)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"spots": []models.Spot{}, "cached": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": spots, "cached": true})
}
