package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftr-labs/fliphq/internal/services"
)

type SnapshotHandler struct {
	snapshots *services.SnapshotService
}

func NewSnapshotHandler(snapshots *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// GetHistory returns inventory value snapshots for a period
// (week, month, 3month, year, all)
func (h *SnapshotHandler) GetHistory(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	snapshots, err := h.snapshots.GetHistory(period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// TakeSnapshot records a snapshot immediately (manual trigger)
func (h *SnapshotHandler) TakeSnapshot(c *gin.Context) {
	if err := h.snapshots.TakeSnapshot(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}
