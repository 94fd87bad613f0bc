package models

// ValuationInput carries the item attributes the valuation engine needs.
// Defaults are applied at construction: an empty Condition means "no specific
// defect" and AcquisitionCost defaults to zero.
type ValuationInput struct {
	Category        Category `json:"category" binding:"required"`
	Subcategory     string   `json:"subcategory" binding:"required"`
	Type            ItemType `json:"type" binding:"required"`
	Condition       string   `json:"condition"`
	AcquisitionCost float64  `json:"acquisition_cost"`
}

// ValuationResult is the full profit breakdown for an item. Monetary fields
// are whole currency units; Low/High pairs are the variance band around the
// center value.
type ValuationResult struct {
	EstimatedValue  int `json:"estimated_value"`
	FixCost         int `json:"fix_cost"`
	PostFixValue    int `json:"post_fix_value"`
	Profit          int `json:"profit"`
	LowProfit       int `json:"low_profit"`
	HighProfit      int `json:"high_profit"`
	LowValue        int `json:"low_value"`
	HighValue       int `json:"high_value"`
	DemandScore     int `json:"demand_score"`
	FixabilityScore int `json:"fixability_score"`
	Rating          int `json:"rating"`
}
