package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ftr-labs/fliphq/internal/models"
)

// newTestDB opens a private in-memory database migrated with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	// A single connection keeps the shared in-memory database alive and
	// serializes access under sqlite.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.TokenWallet{},
		&models.LoggedItem{},
		&models.SavedSpot{},
		&models.InventoryValueSnapshot{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestInitializeSeedsWalletOnce(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	count, seeded, err := svc.Initialize()
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if !seeded {
		t.Error("first Initialize() should seed the wallet")
	}
	if count != InitialTokens {
		t.Errorf("seeded count = %d, want %d", count, InitialTokens)
	}

	count, seeded, err = svc.Initialize()
	if err != nil {
		t.Fatalf("second Initialize() error: %v", err)
	}
	if seeded {
		t.Error("second Initialize() should be a no-op")
	}
	if count != InitialTokens {
		t.Errorf("count after second Initialize() = %d, want %d", count, InitialTokens)
	}
}

func TestGetSeedsMissingWallet(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	count, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if count != InitialTokens {
		t.Errorf("Get() on fresh wallet = %d, want %d", count, InitialTokens)
	}
}

func TestDeductSpendsOneToken(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	deducted, err := svc.Deduct()
	if err != nil {
		t.Fatalf("Deduct() error: %v", err)
	}
	if !deducted {
		t.Fatal("Deduct() with tokens available returned false")
	}

	count, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if count != InitialTokens-1 {
		t.Errorf("count after deduct = %d, want %d", count, InitialTokens-1)
	}
}

func TestDeductRefusesEmptyWallet(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	if _, err := svc.Set(0); err != nil {
		t.Fatalf("Set(0) error: %v", err)
	}

	deducted, err := svc.Deduct()
	if err != nil {
		t.Fatalf("Deduct() on empty wallet should not error, got: %v", err)
	}
	if deducted {
		t.Error("Deduct() on empty wallet returned true")
	}

	count, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if count != 0 {
		t.Errorf("empty wallet went to %d after refused deduct", count)
	}
}

func TestRefundRestoresDeductedToken(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	if _, err := svc.Deduct(); err != nil {
		t.Fatalf("Deduct() error: %v", err)
	}
	count, err := svc.Refund()
	if err != nil {
		t.Fatalf("Refund() error: %v", err)
	}
	if count != InitialTokens {
		t.Errorf("count after deduct+refund = %d, want %d", count, InitialTokens)
	}
}

func TestAddCreditsBundle(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	bundle, ok := models.FindTokenBundle("hustler")
	if !ok {
		t.Fatal("hustler bundle missing")
	}

	count, err := svc.Add(bundle.Tokens)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if count != InitialTokens+bundle.Tokens {
		t.Errorf("count after purchase = %d, want %d", count, InitialTokens+bundle.Tokens)
	}
}

func TestSetOverridesBalance(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	if _, err := svc.Set(3); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	count, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if count != 3 {
		t.Errorf("count after Set(3) = %d, want 3", count)
	}
}

func TestConcurrentDeductsNeverOverdraw(t *testing.T) {
	svc := NewTokenService(newTestDB(t))

	const available = 5
	const attempts = 20

	if _, err := svc.Set(available); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deducted, err := svc.Deduct()
			if err != nil {
				t.Errorf("concurrent Deduct() error: %v", err)
				return
			}
			results <- deducted
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for deducted := range results {
		if deducted {
			succeeded++
		}
	}
	if succeeded != available {
		t.Errorf("%d deducts succeeded against a balance of %d", succeeded, available)
	}

	count, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if count != 0 {
		t.Errorf("final balance = %d, want 0", count)
	}
}
