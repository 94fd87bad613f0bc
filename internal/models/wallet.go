package models

import (
	"time"
)

// TokenWallet is the single persisted credit balance for an installation.
// There is exactly one row, keyed by a fixed ID owned by the token service.
type TokenWallet struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Count       int       `json:"count" gorm:"not null;default:0"`
	Initialized bool      `json:"initialized" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TokenBundle is a purchasable pack of tokens
type TokenBundle struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Tokens int    `json:"tokens"`
	Price  string `json:"price"`
}

// TokenBundles returns the purchasable bundles in display order
func TokenBundles() []TokenBundle {
	return []TokenBundle{
		{ID: "starter", Name: "Starter Pack", Tokens: 10, Price: "$0.99"},
		{ID: "hustler", Name: "Hustler Pack", Tokens: 35, Price: "$2.99"},
		{ID: "mogul", Name: "Mogul Pack", Tokens: 80, Price: "$4.99"},
	}
}

// FindTokenBundle looks up a bundle by ID
func FindTokenBundle(id string) (TokenBundle, bool) {
	for _, b := range TokenBundles() {
		if b.ID == id {
			return b, true
		}
	}
	return TokenBundle{}, false
}
