package services

import (
	"math"

	"github.com/ftr-labs/fliphq/internal/catalog"
	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
)

// maxConditionSeverity caps 1/conditionMultiplier for a zero multiplier. The
// shipped tables never contain one, but a custom catalog might.
const maxConditionSeverity = 10.0

// ValuationService computes profit estimates for secondhand items. Calculate
// is pure and never fails: missing catalog entries degrade to defaults so a
// caller always gets an estimate to render.
type ValuationService struct {
	catalog *catalog.Catalog
}

// NewValuationService creates a valuation service over the given catalog
func NewValuationService(cat *catalog.Catalog) *ValuationService {
	return &ValuationService{catalog: cat}
}

// Calculate produces the full valuation breakdown for an item.
//
// Pipeline: base price for the subcategory, adjusted by the category-aware
// type multiplier, then by condition. Fix cost scales with condition severity
// (worse condition costs proportionally more to repair), post-fix value is the
// restored base value, and profit nets out fix and acquisition costs. The
// low/high band widens for low-demand subcategories, bounded to [10%, 25%].
func (s *ValuationService) Calculate(input models.ValuationInput) models.ValuationResult {
	condition := input.Condition
	if condition == "" {
		condition = models.ConditionNone
	}

	basePrice := s.catalog.BasePrice(input.Subcategory)
	typeMultiplier := s.catalog.TypeMultiplier(input.Category, input.Subcategory, input.Type)
	conditionMultiplier := s.catalog.ConditionMultiplier(condition)
	demandScore := s.catalog.DemandScore(input.Subcategory)

	// Resale value if the item were in good/refurbished shape
	baseValue := math.Round(basePrice * typeMultiplier)

	// Current resale value in its existing condition
	estimatedValue := math.Round(baseValue * conditionMultiplier)

	// Cost to bring it back to base value: a 0.5 condition is 2x severity
	averageFixCost := s.catalog.AverageFixCost(input.Subcategory)
	conditionSeverity := maxConditionSeverity
	if conditionMultiplier > 0 {
		conditionSeverity = 1 / conditionMultiplier
	}
	fixCost := math.Round(averageFixCost * conditionSeverity)

	postFixValue := baseValue
	profit := postFixValue - fixCost - input.AcquisitionCost

	// Low demand widens the uncertainty band, high demand narrows it
	variance := 0.15 + (10-float64(demandScore))/10*0.05
	variance = math.Max(0.10, math.Min(0.25, variance))

	lowProfit := math.Round(profit * (1 - variance))
	highProfit := math.Round(profit * (1 + variance))
	lowValue := math.Round(postFixValue * (1 - variance))
	highValue := math.Round(postFixValue * (1 + variance))

	// Fixability (1-10): better condition is easier to fix, pricey repairs
	// knock off a complexity penalty
	complexityPenalty := 0.0
	if fixCost > 50 {
		complexityPenalty = 2
	} else if fixCost > 25 {
		complexityPenalty = 1
	}
	fixabilityScore := clampInt(int(math.Round(conditionMultiplier*10)-complexityPenalty), 1, 10)

	rating := starRating(profit, conditionMultiplier, demandScore)

	metrics.ValuationsTotal.Inc()
	metrics.ValuationRating.Observe(float64(rating))

	return models.ValuationResult{
		EstimatedValue:  int(estimatedValue),
		FixCost:         int(fixCost),
		PostFixValue:    int(postFixValue),
		Profit:          int(math.Round(profit)),
		LowProfit:       int(lowProfit),
		HighProfit:      int(highProfit),
		LowValue:        int(lowValue),
		HighValue:       int(highValue),
		DemandScore:     demandScore,
		FixabilityScore: fixabilityScore,
		Rating:          rating,
	}
}

// starRating scores flip worthiness from 0 to 5. Thresholds are deliberately
// strict: five stars should be rare.
func starRating(profit, conditionMultiplier float64, demandScore int) int {
	var stars int
	switch {
	case profit < 0:
		stars = 0
	case profit < 5:
		stars = 1
	case profit < 15:
		stars = 2
	case profit < 35:
		stars = 3
	case profit < 75:
		stars = 4
	default:
		stars = 5
	}

	// Very poor condition and slow-moving subcategories add risk
	if conditionMultiplier < 0.4 && stars > 0 {
		stars--
	}
	if demandScore < 4 && stars > 1 {
		stars--
	}

	// High demand plus real profit makes for an easy flip
	if demandScore >= 8 && profit >= 50 && stars < 5 {
		stars++
	}

	return clampInt(stars, 0, 5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
