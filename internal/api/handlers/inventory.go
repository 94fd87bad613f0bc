package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftr-labs/fliphq/internal/models"
	"github.com/ftr-labs/fliphq/internal/services"
)

type InventoryHandler struct {
	inventory *services.InventoryService
}

func NewInventoryHandler(inventory *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// ListItems returns logged items, optionally filtered by pipeline status
func (h *InventoryHandler) ListItems(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		if !models.IsValidStatus(models.ItemStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		items, err := h.inventory.ListItemsByStatus(models.ItemStatus(status))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.inventory.ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// LogItem records a new find with its valuation estimate
func (h *InventoryHandler) LogItem(c *gin.Context) {
	var req models.LogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventory.LogItem(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateStatus moves an item through Found -> Fixed -> Flipped
func (h *InventoryHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventory.UpdateStatus(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes a logged item
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.inventory.DeleteItem(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetStats returns inventory totals
func (h *InventoryHandler) GetStats(c *gin.Context) {
	stats, err := h.inventory.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ClearAll wipes items and saved spots (tokens survive)
func (h *InventoryHandler) ClearAll(c *gin.Context) {
	if err := h.inventory.ClearAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// ListSpots returns the user's saved spots
func (h *InventoryHandler) ListSpots(c *gin.Context) {
	spots, err := h.inventory.ListSpots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, spots)
}

// SaveSpot bookmarks a spot from scan results
func (h *InventoryHandler) SaveSpot(c *gin.Context) {
	var spot models.SavedSpot
	if err := c.ShouldBindJSON(&spot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if spot.ID == "" || spot.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and name are required"})
		return
	}

	if err := h.inventory.SaveSpot(spot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, spot)
}

// RemoveSpot deletes a saved spot
func (h *InventoryHandler) RemoveSpot(c *gin.Context) {
	if err := h.inventory.RemoveSpot(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
