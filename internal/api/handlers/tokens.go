package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
	"github.com/ftr-labs/fliphq/internal/services"
)

type TokenHandler struct {
	tokens  *services.TokenService
	devMode bool
}

func NewTokenHandler(tokens *services.TokenService, devMode bool) *TokenHandler {
	return &TokenHandler{tokens: tokens, devMode: devMode}
}

// GetTokens returns the current balance, seeding the wallet on first call
func (h *TokenHandler) GetTokens(c *gin.Context) {
	count, err := h.tokens.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetBundles returns the purchasable token bundles
func (h *TokenHandler) GetBundles(c *gin.Context) {
	c.JSON(http.StatusOK, models.TokenBundles())
}

type purchaseRequest struct {
	BundleID string `json:"bundle_id" binding:"required"`
}

// Purchase credits a bundle's tokens to the wallet. Payment itself is handled
// by the platform's purchase flow before this endpoint is called.
func (h *TokenHandler) Purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bundle, ok := models.FindTokenBundle(req.BundleID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown bundle"})
		return
	}

	count, err := h.tokens.Add(bundle.Tokens)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.TokensPurchasedTotal.Add(float64(bundle.Tokens))
	c.JSON(http.StatusOK, gin.H{"count": count, "added": bundle.Tokens})
}

type setTokensRequest struct {
	Count *int `json:"count" binding:"required"`
}

// SetTokens overwrites the balance. Only reachable in dev mode; production
// deployments never expose it.
func (h *TokenHandler) SetTokens(c *gin.Context) {
	if !h.devMode {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req setTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be non-negative"})
		return
	}

	count, err := h.tokens.Set(*req.Count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
