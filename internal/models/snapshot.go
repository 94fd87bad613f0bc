package models

import (
	"time"
)

// InventoryValueSnapshot records daily inventory totals for trend charts
type InventoryValueSnapshot struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SnapshotDate   time.Time `json:"snapshot_date" gorm:"index"`
	TotalItems     int       `json:"total_items"`
	FoundItems     int       `json:"found_items"`
	FixedItems     int       `json:"fixed_items"`
	FlippedItems   int       `json:"flipped_items"`
	EstimatedValue float64   `json:"estimated_value"`
	RealizedProfit float64   `json:"realized_profit"`
	CreatedAt      time.Time `json:"created_at"`
}
