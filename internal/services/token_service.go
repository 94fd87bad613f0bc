package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
)

const (
	// walletID is the fixed primary key of the single wallet row
	walletID = "user_tokens"

	// InitialTokens is the free balance seeded on first use
	InitialTokens = 10
)

// TokenService is the credit ledger: one persisted wallet row holding the
// spendable token balance. All mutations are serialized behind a process-wide
// mutex and the decrement itself is a conditional store-side update, so the
// balance can never go negative even with concurrent callers.
type TokenService struct {
	mu sync.Mutex
	db *gorm.DB
}

// NewTokenService creates a token service over the given database
func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{db: db}
}

// Initialize seeds the wallet with the free starting balance on first use.
// Returns the current count and whether this call did the seeding; calling it
// against an existing wallet is a no-op, not an error.
func (s *TokenService) Initialize() (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initializeLocked()
}

func (s *TokenService) initializeLocked() (int, bool, error) {
	var wallet models.TokenWallet
	err := s.db.First(&wallet, "id = ?", walletID).Error
	if err == nil {
		return wallet.Count, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}

	wallet = models.TokenWallet{ID: walletID, Count: InitialTokens, Initialized: true}
	if err := s.db.Create(&wallet).Error; err != nil {
		return 0, false, err
	}
	metrics.TokenBalance.Set(float64(InitialTokens))
	return InitialTokens, true, nil
}

// Get returns the current balance, seeding the wallet first if it does not
// exist yet. Storage failures come back as errors, never as a zero balance.
func (s *TokenService) Get() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count, _, err := s.initializeLocked()
	return count, err
}

// Deduct atomically spends one token. Returns false with a nil error when the
// balance is empty so callers can tell "out of tokens" apart from a broken
// store.
func (s *TokenService) Deduct() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.initializeLocked(); err != nil {
		return false, err
	}

	// Conditional decrement: only fires when at least one token remains.
	res := s.db.Model(&models.TokenWallet{}).
		Where("id = ? AND count >= 1", walletID).
		Update("count", gorm.Expr("count - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	metrics.TokensDeductedTotal.Inc()
	s.publishBalanceLocked()
	return true, nil
}

// Add credits tokens to the wallet (bundle purchases and refunds) and returns
// the new balance
func (s *TokenService) Add(amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(amount)
}

func (s *TokenService) addLocked(amount int) (int, error) {
	if _, _, err := s.initializeLocked(); err != nil {
		return 0, err
	}

	res := s.db.Model(&models.TokenWallet{}).
		Where("id = ?", walletID).
		Update("count", gorm.Expr("count + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}

	var wallet models.TokenWallet
	if err := s.db.First(&wallet, "id = ?", walletID).Error; err != nil {
		return 0, err
	}
	metrics.TokenBalance.Set(float64(wallet.Count))
	return wallet.Count, nil
}

// Refund returns one token after a billable action failed or produced nothing
func (s *TokenService) Refund() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.addLocked(1)
	if err != nil {
		return 0, err
	}
	metrics.TokensRefundedTotal.Inc()
	return count, nil
}

// Set overwrites the balance unconditionally. Dev/test tooling only; never
// route this from a purchase or scan path.
func (s *TokenService) Set(amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := models.TokenWallet{ID: walletID, Count: amount, Initialized: true}
	if err := s.db.Save(&wallet).Error; err != nil {
		return 0, err
	}
	metrics.TokenBalance.Set(float64(amount))
	return amount, nil
}

func (s *TokenService) publishBalanceLocked() {
	var wallet models.TokenWallet
	if err := s.db.First(&wallet, "id = ?", walletID).Error; err == nil {
		metrics.TokenBalance.Set(float64(wallet.Count))
	}
}
