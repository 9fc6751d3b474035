package model

// RecipeEntry maps a product to one ingredient it consumes. QtyPerUnit is
// the ingredient quantity used to produce a single unit of the product.
// At most one entry exists per (product, ingredient) pair.
type RecipeEntry struct {
	ProductID    int64   `json:"productId" db:"product_id"`
	IngredientID int64   `json:"ingredientId" db:"ingredient_id"`
	QtyPerUnit   float64 `json:"qtyPerUnit" db:"qty_per_unit"`
}

// RecipeRequirement is a recipe entry joined with live catalog data, read
// inside the sale transaction with the ingredient row locked. It carries
// everything the sufficiency check needs.
type RecipeRequirement struct {
	ProductID      int64
	ProductName    string
	IngredientID   int64
	IngredientName string
	Unit           string
	QtyPerUnit     float64
	Stock          float64
}

// RecipeEntryRequest represents one entry in a recipe upsert payload.
type RecipeEntryRequest struct {
	IngredientID int64   `json:"ingredientId"`
	QtyPerUnit   float64 `json:"qtyPerUnit"`
}
