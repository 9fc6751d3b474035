package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ingredientRepository implements the IngredientRepository interface using PostgreSQL.
type ingredientRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewIngredientRepository creates a new PostgreSQL-backed ingredient repository.
func NewIngredientRepository(pool *pgxpool.Pool, logger zerolog.Logger) IngredientRepository {
	return &ingredientRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "ingredient").Logger(),
	}
}

// GetAll retrieves all ingredients ordered by name.
func (r *ingredientRepository) GetAll(ctx context.Context) ([]model.Ingredient, error) {
	query := `
		SELECT id, name, unit, cost_per_unit, stock, pack_weight, pack_price
		FROM ingredients
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query ingredients")
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.CostPerUnit, &ing.Stock, &ing.PackWeight, &ing.PackPrice)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan ingredient row")
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating ingredient rows")
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}

	return ingredients, nil
}

// GetByID retrieves a single ingredient by its ID.
func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*model.Ingredient, error) {
	query := `
		SELECT id, name, unit, cost_per_unit, stock, pack_weight, pack_price
		FROM ingredients
		WHERE id = $1
	`

	var ing model.Ingredient
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.CostPerUnit, &ing.Stock, &ing.PackWeight, &ing.PackPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("ingredient_id", id).Msg("ingredient not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("ingredient_id", id).Msg("failed to query ingredient")
		return nil, fmt.Errorf("failed to query ingredient: %w", err)
	}

	return &ing, nil
}

// Create inserts a new ingredient and returns it with its assigned ID.
func (r *ingredientRepository) Create(ctx context.Context, ing *model.Ingredient) (*model.Ingredient, error) {
	query := `
		INSERT INTO ingredients (name, unit, cost_per_unit, stock, pack_weight, pack_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	created := *ing
	err := r.pool.QueryRow(ctx, query,
		ing.Name, ing.Unit, ing.CostPerUnit, ing.Stock, ing.PackWeight, ing.PackPrice,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("name", ing.Name).Msg("duplicate ingredient name")
			return nil, model.ErrDuplicateName
		}
		r.logger.Error().Err(err).Str("name", ing.Name).Msg("failed to create ingredient")
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	r.logger.Debug().Int64("ingredient_id", created.ID).Str("name", created.Name).Msg("ingredient created")
	return &created, nil
}

// Update modifies an existing ingredient.
func (r *ingredientRepository) Update(ctx context.Context, ing *model.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, unit = $3, cost_per_unit = $4, stock = $5, pack_weight = $6, pack_price = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		ing.ID, ing.Name, ing.Unit, ing.CostPerUnit, ing.Stock, ing.PackWeight, ing.PackPrice)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateName
		}
		r.logger.Error().Err(err).Int64("ingredient_id", ing.ID).Msg("failed to update ingredient")
		return fmt.Errorf("failed to update ingredient: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrIngredientNotFound
	}

	return nil
}
