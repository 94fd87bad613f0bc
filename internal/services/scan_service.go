package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
)

const (
	// maxScanResults caps how many spots a single scan returns
	maxScanResults = 15

	scanCacheSize = 16
	scanCacheTTL  = 24 * time.Hour
)

// ErrInsufficientTokens is returned when a billable action is attempted with
// an empty balance
var ErrInsufficientTokens = errors.New("insufficient tokens")

// SpotProvider finds secondhand-source spots near a position
type SpotProvider interface {
	Search(ctx context.Context, lat, lng float64) ([]models.Spot, error)
}

// ScanService runs the billable scan flow: charge one token, search, and
// refund when the search fails or comes back empty so the user is never
// charged for a non-outcome. Successful results are cached for a day, keyed
// by a coarse position.
type ScanService struct {
	tokens   *TokenService
	provider SpotProvider
	cache    *expirable.LRU[string, []models.Spot]
}

// NewScanService creates a scan service
func NewScanService(tokens *TokenService, provider SpotProvider) *ScanService {
	return &ScanService{
		tokens:   tokens,
		provider: provider,
		cache:    expirable.NewLRU[string, []models.Spot](scanCacheSize, nil, scanCacheTTL),
	}
}

// Scan performs one token-gated spot search. Returns ErrInsufficientTokens
// when the balance is empty; storage failures propagate as-is.
func (s *ScanService) Scan(ctx context.Context, lat, lng float64) (*models.ScanResult, error) {
	count, err := s.tokens.Get()
	if err != nil {
		return nil, err
	}
	if count < 1 {
		metrics.ScansTotal.WithLabelValues("insufficient").Inc()
		return nil, ErrInsufficientTokens
	}

	deducted, err := s.tokens.Deduct()
	if err != nil {
		return nil, err
	}
	if !deducted {
		// Lost the balance to a concurrent deduction; same outcome as an
		// empty balance up front.
		metrics.ScansTotal.WithLabelValues("insufficient").Inc()
		return nil, ErrInsufficientTokens
	}

	spots, err := s.provider.Search(ctx, lat, lng)
	if err != nil {
		s.refund()
		metrics.ScansTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("spot search failed: %w", err)
	}

	if len(spots) > maxScanResults {
		spots = spots[:maxScanResults]
	}

	result := &models.ScanResult{Spots: spots}

	if len(spots) == 0 {
		s.refund()
		result.Refunded = true
		metrics.ScansTotal.WithLabelValues("empty").Inc()
	} else {
		s.cache.Add(scanCacheKey(lat, lng), spots)
		metrics.ScansTotal.WithLabelValues("success").Inc()
		metrics.ScanSpotsReturned.Observe(float64(len(spots)))
	}

	remaining, err := s.tokens.Get()
	if err != nil {
		return nil, err
	}
	result.TokensRemaining = remaining

	return result, nil
}

// Cached returns the last successful scan results near a position, if any
func (s *ScanService) Cached(lat, lng float64) ([]models.Spot, bool) {
	return s.cache.Get(scanCacheKey(lat, lng))
}

func (s *ScanService) refund() {
	if _, err := s.tokens.Refund(); err != nil {
		log.Printf("Scan service: token refund failed: %v", err)
	}
}

// scanCacheKey buckets positions to ~100m so nearby scans share a cache entry
func scanCacheKey(lat, lng float64) string {
	return fmt.Sprintf("%.3f,%.3f", lat, lng)
}
