package services

import (
	"testing"

	"github.com/ftr-labs/fliphq/internal/catalog"
	"github.com/ftr-labs/fliphq/internal/models"
)

func TestCalculateRefurbishedPhoneWithCrackedScreen(t *testing.T) {
	svc := NewValuationService(catalog.Default())

	// phone: base 200, refurbished electronics 0.7, Cracked Screen 0.5,
	// avg fix 40, demand 7
	result := svc.Calculate(models.ValuationInput{
		Category:        models.CategoryElectronics,
		Subcategory:     "phone",
		Type:            models.TypeRefurbished,
		Condition:       "Cracked Screen",
		AcquisitionCost: 20,
	})

	want := models.ValuationResult{
		EstimatedValue:  70,  // round(140 * 0.5)
		FixCost:         80,  // round(40 * 2)
		PostFixValue:    140, // round(200 * 0.7)
		Profit:          40,  // 140 - 80 - 20
		LowProfit:       33,  // round(40 * 0.835), variance 0.165
		HighProfit:      47,  // round(40 * 1.165)
		LowValue:        117, // round(140 * 0.835)
		HighValue:       163, // round(140 * 1.165)
		DemandScore:     7,
		FixabilityScore: 3, // round(0.5*10) - 2 (fix cost over 50)
		Rating:          4, // profit 40 lands in the 35-75 tier, no adjustments
	}

	if result != want {
		t.Errorf("Calculate() = %+v, want %+v", result, want)
	}
}

func TestCalculateUnknownSubcategory(t *testing.T) {
	svc := NewValuationService(catalog.Default())

	tests := []struct {
		name            string
		acquisitionCost float64
		wantProfit      int
		wantRating      int
	}{
		{"free pickup", 0, 0, 1},  // profit 0 lands in the under-5 tier
		{"paid pickup", 7, -7, 0}, // losing money
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Calculate(models.ValuationInput{
				Category:        models.CategoryDecor,
				Subcategory:     "widget",
				Type:            models.TypeModern,
				AcquisitionCost: tt.acquisitionCost,
			})

			if result.EstimatedValue != 0 || result.FixCost != 0 || result.PostFixValue != 0 {
				t.Errorf("expected all-zero estimate, got %+v", result)
			}
			if result.DemandScore != 5 {
				t.Errorf("DemandScore = %d, want 5", result.DemandScore)
			}
			if result.Profit != tt.wantProfit {
				t.Errorf("Profit = %d, want %d", result.Profit, tt.wantProfit)
			}
			if result.Rating != tt.wantRating {
				t.Errorf("Rating = %d, want %d", result.Rating, tt.wantRating)
			}
		})
	}
}

func TestCalculateNoConditionMeansFullValue(t *testing.T) {
	svc := NewValuationService(catalog.Default())

	result := svc.Calculate(models.ValuationInput{
		Category:    models.CategoryClothing,
		Subcategory: "jacket",
		Type:        models.TypeModern,
	})

	// Multiplier 1: estimated value equals post-fix value and the fix cost
	// is the plain subcategory average.
	if result.EstimatedValue != result.PostFixValue {
		t.Errorf("EstimatedValue = %d, want %d (post-fix value)", result.EstimatedValue, result.PostFixValue)
	}
	if result.FixCost != 10 {
		t.Errorf("FixCost = %d, want 10 (jacket average)", result.FixCost)
	}
}

func TestCalculateBandAndScoreInvariants(t *testing.T) {
	cat := catalog.Default()
	svc := NewValuationService(cat)

	conditions := []string{"", "Cracked Screen", "Water Damage", "Stains", "Rust", models.ConditionNone, "Unheard Of Defect"}
	costs := []float64{0, 5, 50, 300}

	for _, category := range models.AllCategories() {
		for _, sub := range cat.SubcategoryOptions(category) {
			for _, itemType := range models.AllItemTypes() {
				for _, condition := range conditions {
					for _, cost := range costs {
						result := svc.Calculate(models.ValuationInput{
							Category:        category,
							Subcategory:     sub,
							Type:            itemType,
							Condition:       condition,
							AcquisitionCost: cost,
						})

						// The band multipliers flip below zero, so compare
						// against the ordered endpoints.
						bandLo, bandHi := result.LowProfit, result.HighProfit
						if bandLo > bandHi {
							bandLo, bandHi = bandHi, bandLo
						}
						if result.Profit < bandLo || result.Profit > bandHi {
							t.Fatalf("%s/%s/%s/%q: profit %d outside band [%d, %d]",
								category, sub, itemType, condition, result.Profit, bandLo, bandHi)
						}
						if result.LowValue > result.PostFixValue || result.PostFixValue > result.HighValue {
							t.Fatalf("%s/%s/%s/%q: value band violated: %d <= %d <= %d",
								category, sub, itemType, condition, result.LowValue, result.PostFixValue, result.HighValue)
						}
						if result.Rating < 0 || result.Rating > 5 {
							t.Fatalf("%s/%s: rating %d out of range", category, sub, result.Rating)
						}
						if result.FixabilityScore < 1 || result.FixabilityScore > 10 {
							t.Fatalf("%s/%s: fixability %d out of range", category, sub, result.FixabilityScore)
						}
						if result.DemandScore < 1 || result.DemandScore > 10 {
							t.Fatalf("%s/%s: demand %d out of range", category, sub, result.DemandScore)
						}
					}
				}
			}
		}
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	svc := NewValuationService(catalog.Default())

	input := models.ValuationInput{
		Category:        models.CategoryFurniture,
		Subcategory:     "dresser",
		Type:            models.TypeVintage,
		Condition:       "Scratches",
		AcquisitionCost: 35,
	}

	first := svc.Calculate(input)
	second := svc.Calculate(input)
	if first != second {
		t.Errorf("identical inputs gave different results: %+v vs %+v", first, second)
	}
}

func TestCalculateVintageElectronicsRules(t *testing.T) {
	svc := NewValuationService(catalog.Default())

	// A vintage phone carries no premium: priced as modern.
	phone := svc.Calculate(models.ValuationInput{
		Category:    models.CategoryElectronics,
		Subcategory: "phone",
		Type:        models.TypeVintage,
	})
	if phone.PostFixValue != 200 {
		t.Errorf("vintage phone PostFixValue = %d, want 200 (modern pricing)", phone.PostFixValue)
	}

	// A vintage camera is a recognized exception and does.
	camera := svc.Calculate(models.ValuationInput{
		Category:    models.CategoryElectronics,
		Subcategory: "camera",
		Type:        models.TypeVintage,
	})
	if camera.PostFixValue != 210 {
		t.Errorf("vintage camera PostFixValue = %d, want 210 (140 * 1.5)", camera.PostFixValue)
	}
}

func TestStarRating(t *testing.T) {
	tests := []struct {
		name                string
		profit              float64
		conditionMultiplier float64
		demandScore         int
		want                int
	}{
		{"losing money", -10, 1.0, 5, 0},
		{"tiny profit", 3, 1.0, 5, 1},
		{"small profit", 10, 1.0, 5, 2},
		{"decent profit", 20, 1.0, 5, 3},
		{"good profit", 40, 1.0, 5, 4},
		{"excellent profit", 100, 1.0, 5, 5},
		{"poor condition penalty", 40, 0.3, 5, 3},
		{"low demand penalty", 40, 1.0, 3, 3},
		{"both penalties stack", 40, 0.3, 3, 2},
		{"high demand bonus", 60, 1.0, 8, 5},
		{"bonus cannot exceed five", 100, 1.0, 9, 5},
		{"penalty cannot go negative", -10, 0.3, 2, 0},
		{"boundary profit zero", 0, 1.0, 5, 1},
		{"boundary thirty five", 35, 1.0, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := starRating(tt.profit, tt.conditionMultiplier, tt.demandScore)
			if got != tt.want {
				t.Errorf("starRating(%v, %v, %d) = %d, want %d",
					tt.profit, tt.conditionMultiplier, tt.demandScore, got, tt.want)
			}
		})
	}
}
