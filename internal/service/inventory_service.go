package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
)

// inventoryService implements InventoryService.
type inventoryService struct {
	ingredientRepo repository.IngredientRepository
	logger         zerolog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(ingredientRepo repository.IngredientRepository, logger zerolog.Logger) InventoryService {
	return &inventoryService{
		ingredientRepo: ingredientRepo,
		logger:         logger.With().Str("service", "inventory").Logger(),
	}
}

// ListIngredients retrieves all ingredients.
func (s *inventoryService) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	ingredients, err := s.ingredientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient retrieves a single ingredient.
func (s *inventoryService) GetIngredient(ctx context.Context, id int64) (*model.Ingredient, error) {
	ing, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	if ing == nil {
		return nil, model.ErrIngredientNotFound
	}
	return ing, nil
}

// CreateIngredient validates and inserts a new ingredient. The cost per
// unit is derived from the pack price and pack weight, never set directly.
func (s *inventoryService) CreateIngredient(ctx context.Context, req *model.IngredientRequest) (*model.Ingredient, error) {
	if err := validateIngredientRequest(req); err != nil {
		return nil, err
	}

	ing := &model.Ingredient{
		Name:        strings.TrimSpace(req.Name),
		Unit:        strings.TrimSpace(req.Unit),
		CostPerUnit: req.DerivedCostPerUnit(),
		Stock:       req.Stock,
		PackWeight:  req.PackWeight,
		PackPrice:   req.PackPrice,
	}

	created, err := s.ingredientRepo.Create(ctx, ing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("ingredient_id", created.ID).
		Str("name", created.Name).
		Float64("cost_per_unit", created.CostPerUnit).
		Msg("ingredient created")
	return created, nil
}

// UpdateIngredient validates and updates an existing ingredient,
// recomputing the derived cost per unit.
func (s *inventoryService) UpdateIngredient(ctx context.Context, id int64, req *model.IngredientRequest) error {
	if err := validateIngredientRequest(req); err != nil {
		return err
	}

	ing := &model.Ingredient{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Unit:        strings.TrimSpace(req.Unit),
		CostPerUnit: req.DerivedCostPerUnit(),
		Stock:       req.Stock,
		PackWeight:  req.PackWeight,
		PackPrice:   req.PackPrice,
	}

	return s.ingredientRepo.Update(ctx, ing)
}

func validateIngredientRequest(req *model.IngredientRequest) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Ingredient name is required")
	}
	if strings.TrimSpace(req.Unit) == "" {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Ingredient unit is required")
	}
	if req.Stock < 0 || req.PackWeight < 0 || req.PackPrice < 0 {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Stock, pack weight and pack price must not be negative")
	}
	return nil
}
