package repository

import (
	"context"
	"fmt"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// recipeRepository implements the RecipeRepository interface using PostgreSQL.
type recipeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRecipeRepository creates a new PostgreSQL-backed recipe repository.
func NewRecipeRepository(pool *pgxpool.Pool, logger zerolog.Logger) RecipeRepository {
	return &recipeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "recipe").Logger(),
	}
}

// GetByProduct retrieves all recipe entries for one product.
func (r *recipeRepository) GetByProduct(ctx context.Context, productID int64) ([]model.RecipeEntry, error) {
	query := `
		SELECT product_id, ingredient_id, qty_per_unit
		FROM recipes
		WHERE product_id = $1
		ORDER BY ingredient_id
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to query recipe")
		return nil, fmt.Errorf("failed to query recipe: %w", err)
	}
	defer rows.Close()

	var entries []model.RecipeEntry
	for rows.Next() {
		var e model.RecipeEntry
		if err := rows.Scan(&e.ProductID, &e.IngredientID, &e.QtyPerUnit); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan recipe row")
			return nil, fmt.Errorf("failed to scan recipe entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating recipe rows")
		return nil, fmt.Errorf("error iterating recipe entries: %w", err)
	}

	return entries, nil
}

// Upsert inserts or replaces the entry for a (product, ingredient) pair.
func (r *recipeRepository) Upsert(ctx context.Context, entry model.RecipeEntry) error {
	query := `
		INSERT INTO recipes (product_id, ingredient_id, qty_per_unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, ingredient_id)
		DO UPDATE SET qty_per_unit = EXCLUDED.qty_per_unit
	`

	_, err := r.pool.Exec(ctx, query, entry.ProductID, entry.IngredientID, entry.QtyPerUnit)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("product_id", entry.ProductID).
			Int64("ingredient_id", entry.IngredientID).
			Msg("failed to upsert recipe entry")
		return fmt.Errorf("failed to upsert recipe entry: %w", err)
	}

	return nil
}

// Delete removes the entry for a (product, ingredient) pair.
func (r *recipeRepository) Delete(ctx context.Context, productID, ingredientID int64) error {
	query := `
		DELETE FROM recipes
		WHERE product_id = $1 AND ingredient_id = $2
	`

	_, err := r.pool.Exec(ctx, query, productID, ingredientID)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("product_id", productID).
			Int64("ingredient_id", ingredientID).
			Msg("failed to delete recipe entry")
		return fmt.Errorf("failed to delete recipe entry: %w", err)
	}

	return nil
}

// CostOfGoods computes the ingredient cost to produce one unit of the product.
// A product without a recipe costs zero.
func (r *recipeRepository) CostOfGoods(ctx context.Context, productID int64) (float64, error) {
	query := `
		SELECT COALESCE(SUM(rc.qty_per_unit * i.cost_per_unit), 0)
		FROM recipes rc
		JOIN ingredients i ON i.id = rc.ingredient_id
		WHERE rc.product_id = $1
	`

	var cost float64
	if err := r.pool.QueryRow(ctx, query, productID).Scan(&cost); err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to compute cost of goods")
		return 0, fmt.Errorf("failed to compute cost of goods: %w", err)
	}

	return cost, nil
}
