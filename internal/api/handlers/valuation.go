package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftr-labs/fliphq/internal/catalog"
	"github.com/ftr-labs/fliphq/internal/models"
	"github.com/ftr-labs/fliphq/internal/services"
)

type ValuationHandler struct {
	valuation *services.ValuationService
	catalog   *catalog.Catalog
}

func NewValuationHandler(valuation *services.ValuationService, cat *catalog.Catalog) *ValuationHandler {
	return &ValuationHandler{valuation: valuation, catalog: cat}
}

// Estimate runs the valuation engine for the supplied item attributes
func (h *ValuationHandler) Estimate(c *gin.Context) {
	var input models.ValuationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AcquisitionCost < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "acquisition_cost must be non-negative"})
		return
	}

	result := h.valuation.Calculate(input)
	c.JSON(http.StatusOK, result)
}

// GetCatalog returns the option lists clients render: categories, their
// subcategories, and per-subcategory condition labels
func (h *ValuationHandler) GetCatalog(c *gin.Context) {
	subcategories := make(map[models.Category][]string)
	conditions := make(map[string][]string)
	for _, category := range models.AllCategories() {
		subs := h.catalog.SubcategoryOptions(category)
		subcategories[category] = subs
		for _, sub := range subs {
			conditions[sub] = h.catalog.ConditionOptions(sub)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":    models.AllCategories(),
		"types":         models.AllItemTypes(),
		"subcategories": subcategories,
		"conditions":    conditions,
	})
}

// GetPlatforms returns recommended resale platforms per category
func (h *ValuationHandler) GetPlatforms(c *gin.Context) {
	platforms := make(map[models.Category][]string)
	for _, category := range models.AllCategories() {
		platforms[category] = h.catalog.Platforms(category)
	}
	c.JSON(http.StatusOK, platforms)
}

// GetToolkits returns suggested repair kits per category
func (h *ValuationHandler) GetToolkits(c *gin.Context) {
	toolkits := make(map[models.Category][]string)
	for _, category := range models.AllCategories() {
		toolkits[category] = h.catalog.Toolkit(category)
	}
	c.JSON(http.StatusOK, toolkits)
}
