// Package catalog holds the static reference tables behind the valuation
// engine: base resale prices, average fix costs, demand scores, condition
// multipliers, and the category-aware type multiplier rules.
package catalog

import (
	"github.com/ftr-labs/fliphq/internal/models"
)

// DefaultConditionKey is the condition-multiplier table entry used when a
// condition label has no entry of its own.
const DefaultConditionKey = "default"

// Catalog exposes pure lookups over the valuation reference tables. Lookups
// never fail: a missing key resolves to a documented default so the engine
// always produces an estimate.
type Catalog struct {
	basePrices           map[string]float64
	averageFixCosts      map[string]float64
	demandScores         map[string]int
	conditionMultipliers map[string]float64
	typeMultipliers      map[models.Category]map[models.ItemType]float64
	vintageExceptions    map[models.Category]map[string]float64
	subcategoryOptions   map[models.Category][]string
	conditionOptions     map[string][]string
	categoryPlatforms    map[models.Category][]string
	categoryToolkits     map[models.Category][]string
}

// BasePrice returns the standard resale price for a subcategory, 0 if unknown
func (c *Catalog) BasePrice(subcategory string) float64 {
	return c.basePrices[subcategory]
}

// AverageFixCost returns the typical repair cost for a subcategory, 0 if unknown
func (c *Catalog) AverageFixCost(subcategory string) float64 {
	return c.averageFixCosts[subcategory]
}

// DemandScore returns how readily a subcategory sells (1-10), 5 if unknown
func (c *Catalog) DemandScore(subcategory string) int {
	if score, ok := c.demandScores[subcategory]; ok {
		return score
	}
	return 5
}

// ConditionMultiplier maps a defect label to a value multiplier. Unknown
// labels fall back to the table's own default entry, then to 1.
func (c *Catalog) ConditionMultiplier(condition string) float64 {
	if m, ok := c.conditionMultipliers[condition]; ok {
		return m
	}
	if m, ok := c.conditionMultipliers[DefaultConditionKey]; ok {
		return m
	}
	return 1
}

// TypeMultiplier returns the category-aware multiplier for a type label.
// Electronics and tools do not carry a general vintage premium: vintage there
// resolves to the modern multiplier unless the subcategory is one of the
// recognized vintage exceptions (old cameras, consoles, and the like).
// Unknown types resolve to 1.
func (c *Catalog) TypeMultiplier(category models.Category, subcategory string, itemType models.ItemType) float64 {
	if itemType == models.TypeVintage {
		if exceptions, ok := c.vintageExceptions[category]; ok {
			if m, ok := exceptions[subcategory]; ok {
				return m
			}
		}
	}

	table, ok := c.typeMultipliers[category]
	if !ok {
		table = c.typeMultipliers[models.CategoryFurniture]
	}

	if m, ok := table[itemType]; ok {
		return m
	}

	// Vintage-excluded categories price vintage as modern.
	if itemType == models.TypeVintage {
		if m, ok := table[models.TypeModern]; ok {
			return m
		}
	}

	return 1
}

// SubcategoryOptions returns the subcategories offered for a category
func (c *Catalog) SubcategoryOptions(category models.Category) []string {
	return c.subcategoryOptions[category]
}

// ConditionOptions returns the defect labels offered for a subcategory. The
// "None of the above" sentinel is always the final option.
func (c *Catalog) ConditionOptions(subcategory string) []string {
	if opts, ok := c.conditionOptions[subcategory]; ok {
		return opts
	}
	return []string{models.ConditionNone}
}

// Platforms returns the recommended resale platforms for a category
func (c *Catalog) Platforms(category models.Category) []string {
	return c.categoryPlatforms[category]
}

// Toolkit returns the suggested repair kit for a category
func (c *Catalog) Toolkit(category models.Category) []string {
	return c.categoryToolkits[category]
}

// Default returns the production catalog
func Default() *Catalog {
	return &Catalog{
		basePrices: map[string]float64{
			// furniture
			"chair":     60,
			"table":     90,
			"dresser":   120,
			"sofa":      150,
			"bookshelf": 50,
			// electronics
			"phone":     200,
			"laptop":    350,
			"tablet":    150,
			"console":   180,
			"speaker":   80,
			"camera":    140,
			"turntable": 160,
			// clothing
			"jacket":   45,
			"sneakers": 70,
			"jeans":    30,
			"handbag":  90,
			"watch":    120,
			// tools
			"drill":   60,
			"saw":     45,
			"mower":   160,
			"toolbox": 35,
			// decor
			"lamp":    35,
			"mirror":  40,
			"rug":     60,
			"artwork": 50,
			// collectibles
			"vinyl":    25,
			"comic":    30,
			"figurine": 40,
			"cards":    20,
			"coin":     35,
		},
		averageFixCosts: map[string]float64{
			"chair":     20,
			"table":     25,
			"dresser":   35,
			"sofa":      45,
			"bookshelf": 15,
			"phone":     40,
			"laptop":    60,
			"tablet":    35,
			"console":   30,
			"speaker":   20,
			"camera":    30,
			"turntable": 35,
			"jacket":    10,
			"sneakers":  12,
			"jeans":     8,
			"handbag":   15,
			"watch":     25,
			"drill":     15,
			"saw":       10,
			"mower":     45,
			"toolbox":   8,
			"lamp":      10,
			"mirror":    12,
			"rug":       20,
			"artwork":   10,
			"vinyl":     5,
			"comic":     5,
			"figurine":  8,
			"cards":     3,
			"coin":      4,
		},
		demandScores: map[string]int{
			"chair":     6,
			"table":     6,
			"dresser":   7,
			"sofa":      5,
			"bookshelf": 5,
			"phone":     7,
			"laptop":    8,
			"tablet":    6,
			"console":   8,
			"speaker":   6,
			"camera":    6,
			"turntable": 7,
			"jacket":    6,
			"sneakers":  8,
			"jeans":     5,
			"handbag":   7,
			"watch":     7,
			"drill":     7,
			"saw":       5,
			"mower":     6,
			"toolbox":   4,
			"lamp":      5,
			"mirror":    4,
			"rug":       4,
			"artwork":   5,
			"vinyl":     7,
			"comic":     6,
			"figurine":  7,
			"cards":     8,
			"coin":      6,
		},
		conditionMultipliers: map[string]float64{
			DefaultConditionKey:  1.0,
			models.ConditionNone: 1.0,
			"Cracked Screen":     0.5,
			"Battery Issues":     0.6,
			"Water Damage":       0.3,
			"Dead Pixels":        0.65,
			"Scratched Disc":     0.6,
			"Broken Leg":         0.55,
			"Wobbly Frame":       0.65,
			"Scratches":          0.8,
			"Stains":             0.7,
			"Chipped Paint":      0.8,
			"Torn Fabric":        0.6,
			"Broken Zipper":      0.75,
			"Worn Soles":         0.7,
			"Faded Color":        0.75,
			"Missing Parts":      0.4,
			"Rust":               0.55,
			"Motor Issues":       0.45,
			"Dull Blade":         0.85,
			"Bent Frame":         0.5,
			"Creased Pages":      0.7,
		},
		typeMultipliers: map[models.Category]map[models.ItemType]float64{
			models.CategoryFurniture: {
				models.TypeVintage:     1.4,
				models.TypeModern:      1.0,
				models.TypeRefurbished: 0.9,
				models.TypeDamaged:     0.5,
			},
			models.CategoryClothing: {
				models.TypeVintage:     1.3,
				models.TypeModern:      1.0,
				models.TypeRefurbished: 0.85,
				models.TypeDamaged:     0.45,
			},
			models.CategoryDecor: {
				models.TypeVintage:     1.35,
				models.TypeModern:      1.0,
				models.TypeRefurbished: 0.9,
				models.TypeDamaged:     0.5,
			},
			models.CategoryCollectibles: {
				models.TypeVintage:     1.6,
				models.TypeModern:      1.0,
				models.TypeRefurbished: 0.9,
				models.TypeDamaged:     0.55,
			},
			// No general vintage entry: vintage electronics/tools resolve to
			// modern unless the subcategory is a vintage exception.
			models.CategoryElectronics: {
				models.TypeModern:      1.0,
				models.TypeRefurbished: 0.7,
				models.TypeDamaged:     0.4,
			},
			models.CategoryTools: {
				models.TypeModern:      1.0,
				models.TypeRefurbished: 0.8,
				models.TypeDamaged:     0.45,
			},
		},
		vintageExceptions: map[models.Category]map[string]float64{
			models.CategoryElectronics: {
				"camera":    1.5,
				"console":   1.4,
				"turntable": 1.6,
			},
			models.CategoryTools: {
				"toolbox": 1.35,
			},
		},
		subcategoryOptions: map[models.Category][]string{
			models.CategoryFurniture:    {"chair", "table", "dresser", "sofa", "bookshelf"},
			models.CategoryElectronics:  {"phone", "laptop", "tablet", "console", "speaker", "camera", "turntable"},
			models.CategoryClothing:     {"jacket", "sneakers", "jeans", "handbag", "watch"},
			models.CategoryTools:        {"drill", "saw", "mower", "toolbox"},
			models.CategoryDecor:        {"lamp", "mirror", "rug", "artwork"},
			models.CategoryCollectibles: {"vinyl", "comic", "figurine", "cards", "coin"},
		},
		conditionOptions: map[string][]string{
			"chair":     {"Broken Leg", "Wobbly Frame", "Scratches", "Stains", models.ConditionNone},
			"table":     {"Broken Leg", "Wobbly Frame", "Scratches", "Stains", models.ConditionNone},
			"dresser":   {"Missing Parts", "Scratches", "Chipped Paint", models.ConditionNone},
			"sofa":      {"Torn Fabric", "Stains", "Broken Leg", models.ConditionNone},
			"bookshelf": {"Wobbly Frame", "Scratches", "Chipped Paint", models.ConditionNone},
			"phone":     {"Cracked Screen", "Battery Issues", "Water Damage", models.ConditionNone},
			"laptop":    {"Cracked Screen", "Battery Issues", "Dead Pixels", "Water Damage", models.ConditionNone},
			"tablet":    {"Cracked Screen", "Battery Issues", "Dead Pixels", models.ConditionNone},
			"console":   {"Missing Parts", "Scratched Disc", "Water Damage", models.ConditionNone},
			"speaker":   {"Water Damage", "Missing Parts", "Scratches", models.ConditionNone},
			"camera":    {"Scratches", "Missing Parts", "Battery Issues", models.ConditionNone},
			"turntable": {"Motor Issues", "Missing Parts", "Scratches", models.ConditionNone},
			"jacket":    {"Torn Fabric", "Broken Zipper", "Stains", "Faded Color", models.ConditionNone},
			"sneakers":  {"Worn Soles", "Stains", "Faded Color", models.ConditionNone},
			"jeans":     {"Torn Fabric", "Stains", "Faded Color", models.ConditionNone},
			"handbag":   {"Broken Zipper", "Stains", "Faded Color", models.ConditionNone},
			"watch":     {"Scratches", "Battery Issues", "Missing Parts", models.ConditionNone},
			"drill":     {"Motor Issues", "Battery Issues", "Missing Parts", models.ConditionNone},
			"saw":       {"Dull Blade", "Rust", "Missing Parts", models.ConditionNone},
			"mower":     {"Motor Issues", "Rust", "Dull Blade", models.ConditionNone},
			"toolbox":   {"Rust", "Missing Parts", "Bent Frame", models.ConditionNone},
			"lamp":      {"Missing Parts", "Scratches", "Bent Frame", models.ConditionNone},
			"mirror":    {"Scratches", "Chipped Paint", models.ConditionNone},
			"rug":       {"Stains", "Faded Color", "Torn Fabric", models.ConditionNone},
			"artwork":   {"Faded Color", "Scratches", "Bent Frame", models.ConditionNone},
			"vinyl":     {"Scratched Disc", "Faded Color", models.ConditionNone},
			"comic":     {"Creased Pages", "Faded Color", "Stains", models.ConditionNone},
			"figurine":  {"Missing Parts", "Chipped Paint", "Scratches", models.ConditionNone},
			"cards":     {"Creased Pages", "Faded Color", models.ConditionNone},
			"coin":      {"Scratches", "Faded Color", models.ConditionNone},
		},
		categoryPlatforms: map[models.Category][]string{
			models.CategoryFurniture:    {"Facebook Marketplace", "Craigslist", "OfferUp"},
			models.CategoryElectronics:  {"eBay", "Swappa", "Facebook Marketplace"},
			models.CategoryClothing:     {"Poshmark", "Depop", "eBay"},
			models.CategoryTools:        {"Facebook Marketplace", "eBay", "Craigslist"},
			models.CategoryDecor:        {"Etsy", "Facebook Marketplace", "OfferUp"},
			models.CategoryCollectibles: {"eBay", "Mercari", "Whatnot"},
		},
		categoryToolkits: map[models.Category][]string{
			models.CategoryFurniture:    {"Wood glue", "Sandpaper", "Stain pen", "Screwdriver set"},
			models.CategoryElectronics:  {"Precision screwdrivers", "Isopropyl alcohol", "Replacement batteries", "Microfiber cloth"},
			models.CategoryClothing:     {"Fabric shaver", "Sewing kit", "Stain remover", "Lint roller"},
			models.CategoryTools:        {"Wire brush", "Penetrating oil", "Replacement blades", "Degreaser"},
			models.CategoryDecor:        {"Touch-up paint", "Super glue", "Polish", "Felt pads"},
			models.CategoryCollectibles: {"Protective sleeves", "Display cases", "Cleaning cloth", "Archival bags"},
		},
	}
}
