package models

import (
	"time"
)

type Category string

const (
	CategoryFurniture    Category = "furniture"
	CategoryElectronics  Category = "electronics"
	CategoryClothing     Category = "clothing"
	CategoryTools        Category = "tools"
	CategoryDecor        Category = "decor"
	CategoryCollectibles Category = "collectibles"
)

// AllCategories returns every supported item category
func AllCategories() []Category {
	return []Category{
		CategoryFurniture,
		CategoryElectronics,
		CategoryClothing,
		CategoryTools,
		CategoryDecor,
		CategoryCollectibles,
	}
}

// ItemType describes the provenance/condition-class of an item
type ItemType string

const (
	TypeVintage     ItemType = "vintage"
	TypeModern      ItemType = "modern"
	TypeRefurbished ItemType = "refurbished"
	TypeDamaged     ItemType = "damaged"
)

// AllItemTypes returns every item type label
func AllItemTypes() []ItemType {
	return []ItemType{TypeVintage, TypeModern, TypeRefurbished, TypeDamaged}
}

// ItemStatus tracks an item through the flip pipeline
type ItemStatus string

const (
	StatusFound   ItemStatus = "Found"
	StatusFixed   ItemStatus = "Fixed"
	StatusFlipped ItemStatus = "Flipped"
)

// ConditionNone is the sentinel for "no specific defect"
const ConditionNone = "None of the above"

// StatusOrder is the pipeline order: Found -> Fixed -> Flipped
func StatusOrder() []ItemStatus {
	return []ItemStatus{StatusFound, StatusFixed, StatusFlipped}
}

// IsValidStatus reports whether s is a known pipeline status
func IsValidStatus(s ItemStatus) bool {
	return s == StatusFound || s == StatusFixed || s == StatusFlipped
}

// LoggedItem is a single tracked find. The Estimated* fields are stamped from
// the valuation engine when the item is logged; ActualFixCost and SellPrice
// record observed real-world numbers once known and take precedence over the
// estimates everywhere a profit is reported.
type LoggedItem struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"not null"`
	Category        Category   `json:"category" gorm:"not null;index"`
	Subcategory     string     `json:"subcategory" gorm:"not null;index"`
	Type            ItemType   `json:"type" gorm:"not null"`
	Condition       string     `json:"condition" gorm:"default:'None of the above'"`
	AcquisitionCost float64    `json:"acquisition_cost"`
	Status          ItemStatus `json:"status" gorm:"not null;index;default:'Found'"`

	EstimatedValue  int `json:"estimated_value"`
	FixCost         int `json:"fix_cost"`
	PostFixValue    int `json:"post_fix_value"`
	Profit          int `json:"profit"`
	DemandScore     int `json:"demand_score"`
	FixabilityScore int `json:"fixability_score"`
	Rating          int `json:"rating"`

	ActualFixCost *float64 `json:"actual_fix_cost,omitempty"`
	SellPrice     *float64 `json:"sell_price,omitempty"`

	LoggedAt  time.Time `json:"logged_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveFixCost returns the observed fix cost when recorded, the estimate otherwise
func (i *LoggedItem) EffectiveFixCost() float64 {
	if i.ActualFixCost != nil {
		return *i.ActualFixCost
	}
	return float64(i.FixCost)
}

// EffectiveSaleValue returns the actual sell price when the item has been
// flipped, the post-fix estimate otherwise
func (i *LoggedItem) EffectiveSaleValue() float64 {
	if i.SellPrice != nil {
		return *i.SellPrice
	}
	return float64(i.PostFixValue)
}

// EffectiveProfit substitutes observed numbers for estimates wherever they exist
func (i *LoggedItem) EffectiveProfit() float64 {
	return i.EffectiveSaleValue() - i.EffectiveFixCost() - i.AcquisitionCost
}

type LogItemRequest struct {
	Name            string   `json:"name" binding:"required"`
	Category        Category `json:"category" binding:"required"`
	Subcategory     string   `json:"subcategory" binding:"required"`
	Type            ItemType `json:"type" binding:"required"`
	Condition       string   `json:"condition"`
	AcquisitionCost float64  `json:"acquisition_cost"`
}

// UpdateStatusRequest advances an item through the pipeline. FixCost is only
// meaningful when moving to Fixed, SellPrice when moving to Flipped.
type UpdateStatusRequest struct {
	Status    ItemStatus `json:"status" binding:"required"`
	FixCost   *float64   `json:"fix_cost"`
	SellPrice *float64   `json:"sell_price"`
}

type InventoryStats struct {
	TotalItems      int     `json:"total_items"`
	FoundItems      int     `json:"found_items"`
	FixedItems      int     `json:"fixed_items"`
	FlippedItems    int     `json:"flipped_items"`
	EstimatedValue  float64 `json:"estimated_value"`
	PotentialProfit float64 `json:"potential_profit"`
	RealizedProfit  float64 `json:"realized_profit"`
}
