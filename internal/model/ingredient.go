package model

// Ingredient represents a raw material tracked in inventory.
// CostPerUnit is derived from PackPrice / PackWeight whenever the
// ingredient is saved; it is never edited directly.
type Ingredient struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Unit        string  `json:"unit" db:"unit"`
	CostPerUnit float64 `json:"costPerUnit" db:"cost_per_unit"`
	Stock       float64 `json:"stock" db:"stock"`
	PackWeight  float64 `json:"packWeight" db:"pack_weight"`
	PackPrice   float64 `json:"packPrice" db:"pack_price"`
}

// IngredientRequest represents the payload for creating or updating an ingredient.
type IngredientRequest struct {
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Stock      float64 `json:"stock"`
	PackWeight float64 `json:"packWeight"`
	PackPrice  float64 `json:"packPrice"`
}

// DerivedCostPerUnit computes the cost of one unit of the ingredient from
// its pack price and pack weight. Zero when the pack weight is not set.
func (r *IngredientRequest) DerivedCostPerUnit() float64 {
	if r.PackWeight > 0 {
		return r.PackPrice / r.PackWeight
	}
	return 0
}

// StockAdjustment describes a signed change to one ingredient's stock level.
type StockAdjustment struct {
	IngredientID int64
	Delta        float64
}
