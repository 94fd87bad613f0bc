package models

import (
	"time"
)

// Spot is a secondhand-source location returned by a scan
type Spot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Distance float64 `json:"distance"` // km from the scan origin
}

// SavedSpot is a spot the user bookmarked
type SavedSpot struct {
	ID      string    `json:"id" gorm:"primaryKey"`
	Name    string    `json:"name" gorm:"not null"`
	Address string    `json:"address"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	SavedAt time.Time `json:"saved_at"`
}

// ScanRequest is the caller's position for a spot scan
type ScanRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// ScanResult carries the spots found plus the token accounting outcome.
// Refunded is true when the scan charged a token but gave the user nothing
// useful back.
type ScanResult struct {
	Spots           []Spot `json:"spots"`
	TokensRemaining int    `json:"tokens_remaining"`
	Refunded        bool   `json:"refunded"`
}
