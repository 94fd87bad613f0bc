package database

import (
	"log"

	"gorm.io/gorm"
)

// RunMigrations runs custom data migrations after schema changes.
// Safe to run multiple times.
func RunMigrations(db *gorm.DB) error {
	if err := normalizeItemFields(db); err != nil {
		return err
	}
	return nil
}

// normalizeItemFields backfills defaults on rows written before the
// condition/status columns carried them
func normalizeItemFields(db *gorm.DB) error {
	if !db.Migrator().HasTable("logged_items") {
		return nil
	}

	result := db.Exec(`UPDATE logged_items SET condition = 'None of the above' WHERE condition IS NULL OR condition = ''`)
	if result.Error != nil {
		log.Printf("Warning: failed to normalize item conditions: %v", result.Error)
	}

	result = db.Exec(`UPDATE logged_items SET status = 'Found' WHERE status IS NULL OR status = ''`)
	if result.Error != nil {
		log.Printf("Warning: failed to normalize item statuses: %v", result.Error)
	}

	return nil
}
