package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
)

// MaxInventoryEntries caps both logged items and saved spots; the oldest
// entries are dropped once the cap is exceeded.
const MaxInventoryEntries = 100

// ErrItemNotFound is returned when an item ID does not exist
var ErrItemNotFound = errors.New("item not found")

// InventoryService manages logged items and saved spots. Valuation estimates
// are stamped onto each item at log time; observed fix costs and sell prices
// recorded later take precedence over those estimates in every profit figure.
type InventoryService struct {
	db        *gorm.DB
	valuation *ValuationService
}

// NewInventoryService creates an inventory service
func NewInventoryService(db *gorm.DB, valuation *ValuationService) *InventoryService {
	return &InventoryService{db: db, valuation: valuation}
}

// LogItem records a new find with its valuation estimate
func (s *InventoryService) LogItem(req models.LogItemRequest) (*models.LoggedItem, error) {
	condition := req.Condition
	if condition == "" {
		condition = models.ConditionNone
	}
	if req.AcquisitionCost < 0 {
		return nil, fmt.Errorf("acquisition cost must be non-negative")
	}

	est := s.valuation.Calculate(models.ValuationInput{
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Type:            req.Type,
		Condition:       condition,
		AcquisitionCost: req.AcquisitionCost,
	})

	item := models.LoggedItem{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Type:            req.Type,
		Condition:       condition,
		AcquisitionCost: req.AcquisitionCost,
		Status:          models.StatusFound,
		EstimatedValue:  est.EstimatedValue,
		FixCost:         est.FixCost,
		PostFixValue:    est.PostFixValue,
		Profit:          est.Profit,
		DemandScore:     est.DemandScore,
		FixabilityScore: est.FixabilityScore,
		Rating:          est.Rating,
		LoggedAt:        time.Now(),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}

	s.trimOldestItems()
	s.publishInventoryMetrics()
	return &item, nil
}

// ListItems returns logged items newest-first
func (s *InventoryService) ListItems() ([]models.LoggedItem, error) {
	var items []models.LoggedItem
	if err := s.db.Order("logged_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListItemsByStatus returns items in one pipeline stage, newest-first
func (s *InventoryService) ListItemsByStatus(status models.ItemStatus) ([]models.LoggedItem, error) {
	var items []models.LoggedItem
	if err := s.db.Where("status = ?", status).Order("logged_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus moves an item through the pipeline, recording the observed fix
// cost or sell price when supplied
func (s *InventoryService) UpdateStatus(id string, req models.UpdateStatusRequest) (*models.LoggedItem, error) {
	if !models.IsValidStatus(req.Status) {
		return nil, fmt.Errorf("unknown status %q", req.Status)
	}

	var item models.LoggedItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Status = req.Status
	if req.FixCost != nil && req.Status == models.StatusFixed {
		item.ActualFixCost = req.FixCost
	}
	if req.SellPrice != nil && req.Status == models.StatusFlipped {
		item.SellPrice = req.SellPrice
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}

	s.publishInventoryMetrics()
	return &item, nil
}

// DeleteItem removes a logged item
func (s *InventoryService) DeleteItem(id string) error {
	res := s.db.Delete(&models.LoggedItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	s.publishInventoryMetrics()
	return nil
}

// Stats computes inventory totals. Observed numbers override estimates per
// item, so realized profit reflects actual sell prices and fix costs once the
// user has recorded them.
func (s *InventoryService) Stats() (models.InventoryStats, error) {
	items, err := s.ListItems()
	if err != nil {
		return models.InventoryStats{}, err
	}

	var stats models.InventoryStats
	stats.TotalItems = len(items)
	for i := range items {
		item := &items[i]
		switch item.Status {
		case models.StatusFound:
			stats.FoundItems++
		case models.StatusFixed:
			stats.FixedItems++
		case models.StatusFlipped:
			stats.FlippedItems++
		}

		if item.Status == models.StatusFlipped {
			stats.RealizedProfit += item.EffectiveProfit()
		} else {
			stats.EstimatedValue += float64(item.EstimatedValue)
			stats.PotentialProfit += item.EffectiveProfit()
		}
	}

	return stats, nil
}

// SaveSpot bookmarks a spot; saving an already-saved spot is a no-op
func (s *InventoryService) SaveSpot(spot models.SavedSpot) error {
	var existing models.SavedSpot
	err := s.db.First(&existing, "id = ?", spot.ID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if spot.SavedAt.IsZero() {
		spot.SavedAt = time.Now()
	}
	if err := s.db.Create(&spot).Error; err != nil {
		return err
	}

	s.trimOldestSpots()
	return nil
}

// ListSpots returns saved spots newest-first
func (s *InventoryService) ListSpots() ([]models.SavedSpot, error) {
	var spots []models.SavedSpot
	if err := s.db.Order("saved_at DESC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// RemoveSpot deletes a saved spot
func (s *InventoryService) RemoveSpot(id string) error {
	return s.db.Delete(&models.SavedSpot{}, "id = ?", id).Error
}

// ClearAll wipes logged items and saved spots. The token wallet is left
// untouched; purchased credits survive a data reset.
func (s *InventoryService) ClearAll() error {
	if err := s.db.Where("1 = 1").Delete(&models.LoggedItem{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("1 = 1").Delete(&models.SavedSpot{}).Error; err != nil {
		return err
	}
	s.publishInventoryMetrics()
	return nil
}

// trimOldestItems enforces the entry cap by deleting the oldest overflow
func (s *InventoryService) trimOldestItems() {
	err := s.db.Exec(`
		DELETE FROM logged_items
		WHERE id NOT IN (
			SELECT id FROM logged_items ORDER BY logged_at DESC LIMIT ?
		)
	`, MaxInventoryEntries).Error
	if err != nil {
		log.Printf("Failed to trim inventory overflow: %v", err)
	}
}

func (s *InventoryService) trimOldestSpots() {
	err := s.db.Exec(`
		DELETE FROM saved_spots
		WHERE id NOT IN (
			SELECT id FROM saved_spots ORDER BY saved_at DESC LIMIT ?
		)
	`, MaxInventoryEntries).Error
	if err != nil {
		log.Printf("Failed to trim saved spots overflow: %v", err)
	}
}

func (s *InventoryService) publishInventoryMetrics() {
	stats, err := s.Stats()
	if err != nil {
		return
	}
	metrics.InventoryItemsTotal.Set(float64(stats.TotalItems))
	metrics.InventoryItemsByStatus.WithLabelValues(string(models.StatusFound)).Set(float64(stats.FoundItems))
	metrics.InventoryItemsByStatus.WithLabelValues(string(models.StatusFixed)).Set(float64(stats.FixedItems))
	metrics.InventoryItemsByStatus.WithLabelValues(string(models.StatusFlipped)).Set(float64(stats.FlippedItems))
	metrics.InventoryEstimatedValue.Set(stats.EstimatedValue)
	metrics.InventoryRealizedProfit.Set(stats.RealizedProfit)
}
