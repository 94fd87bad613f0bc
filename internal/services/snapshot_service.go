package services

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
)

// SnapshotService records daily inventory value snapshots for trend charts
type SnapshotService struct {
	mu            sync.Mutex
	db            *gorm.DB
	inventory     *InventoryService
	lastSnapshot  time.Time
	snapshotHour  int // Hour of day to take snapshot (0-23)
	checkInterval time.Duration
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(db *gorm.DB, inventory *InventoryService) *SnapshotService {
	return &SnapshotService{
		db:            db,
		inventory:     inventory,
		snapshotHour:  23, // Default: 11 PM
		checkInterval: 15 * time.Minute,
	}
}

// Start begins the background snapshot worker
func (s *SnapshotService) Start(ctx context.Context) {
	log.Println("Snapshot service started: will record daily inventory value")

	// Check if we need to take a snapshot for today on startup
	s.checkAndSnapshot()

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot service stopping...")
			return
		case <-ticker.C:
			s.checkAndSnapshot()
		}
	}
}

func (s *SnapshotService) checkAndSnapshot() {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if s.hasSnapshotForDate(today) {
		return
	}

	// Only take automatic snapshots at or after the configured hour
	if now.Hour() >= s.snapshotHour {
		if err := s.TakeSnapshot(); err != nil {
			log.Printf("Snapshot service: failed to take snapshot: %v", err)
		}
	}
}

func (s *SnapshotService) hasSnapshotForDate(date time.Time) bool {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var count int64
	s.db.Model(&models.InventoryValueSnapshot{}).
		Where("snapshot_date >= ? AND snapshot_date < ?", startOfDay, endOfDay).
		Count(&count)

	return count > 0
}

// TakeSnapshot records the current inventory totals, upserting today's row
func (s *SnapshotService) TakeSnapshot() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	snapshotDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.inventory.Stats()
	if err != nil {
		return err
	}

	snapshot := models.InventoryValueSnapshot{
		SnapshotDate:   snapshotDate,
		TotalItems:     stats.TotalItems,
		FoundItems:     stats.FoundItems,
		FixedItems:     stats.FixedItems,
		FlippedItems:   stats.FlippedItems,
		EstimatedValue: stats.EstimatedValue,
		RealizedProfit: stats.RealizedProfit,
		CreatedAt:      now,
	}

	result := s.db.Where("DATE(snapshot_date) = DATE(?)", snapshotDate).
		Assign(models.InventoryValueSnapshot{
			TotalItems:     snapshot.TotalItems,
			FoundItems:     snapshot.FoundItems,
			FixedItems:     snapshot.FixedItems,
			FlippedItems:   snapshot.FlippedItems,
			EstimatedValue: snapshot.EstimatedValue,
			RealizedProfit: snapshot.RealizedProfit,
		}).
		FirstOrCreate(&snapshot)

	if result.Error != nil {
		return result.Error
	}

	s.lastSnapshot = now
	metrics.SnapshotsTotal.Inc()
	log.Printf("Snapshot service: recorded inventory snapshot for %s (value: $%.2f, items: %d)",
		snapshotDate.Format("2006-01-02"), stats.EstimatedValue, stats.TotalItems)

	return nil
}

// GetHistory retrieves snapshots for a given period
func (s *SnapshotService) GetHistory(period string) ([]models.InventoryValueSnapshot, error) {
	var snapshots []models.InventoryValueSnapshot

	now := time.Now()
	var startDate time.Time

	switch period {
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "3month":
		startDate = now.AddDate(0, -3, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	case "all":
		startDate = time.Time{} // No filter
	default:
		startDate = now.AddDate(0, -1, 0) // Default to 1 month
	}

	query := s.db.Order("snapshot_date ASC")
	if !startDate.IsZero() {
		query = query.Where("snapshot_date >= ?", startDate)
	}

	if err := query.Find(&snapshots).Error; err != nil {
		return nil, err
	}

	return snapshots, nil
}

// GetLastSnapshot returns the most recent snapshot, nil if none exists
func (s *SnapshotService) GetLastSnapshot() *models.InventoryValueSnapshot {
	var snapshot models.InventoryValueSnapshot
	if err := s.db.Order("snapshot_date DESC").First(&snapshot).Error; err != nil {
		return nil
	}
	return &snapshot
}
