package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo    repository.ProductRepository
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	logger         zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		productRepo:    productRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.With().Str("service", "catalog").Logger(),
	}
}

// ListProducts retrieves all products.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}
	return p, nil
}

// CreateProduct validates and inserts a new product.
func (s *catalogService) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	p, err := s.productRepo.Create(ctx, strings.TrimSpace(req.Name), req.Price)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

// UpdateProduct validates and updates an existing product.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, req *model.ProductRequest) error {
	if err := validateProductRequest(req); err != nil {
		return err
	}

	return s.productRepo.Update(ctx, id, strings.TrimSpace(req.Name), req.Price)
}

// GetRecipe retrieves the recipe entries for a product.
func (s *catalogService) GetRecipe(ctx context.Context, productID int64) ([]model.RecipeEntry, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	entries, err := s.recipeRepo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return entries, nil
}

// SetRecipeEntry inserts or replaces one (product, ingredient) entry.
func (s *catalogService) SetRecipeEntry(ctx context.Context, productID int64, req *model.RecipeEntryRequest) error {
	if req == nil || req.QtyPerUnit <= 0 {
		return model.ErrInvalidQuantity
	}

	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}

	ing, err := s.ingredientRepo.GetByID(ctx, req.IngredientID)
	if err != nil {
		return fmt.Errorf("failed to set recipe entry: %w", err)
	}
	if ing == nil {
		return model.ErrIngredientNotFound
	}

	entry := model.RecipeEntry{
		ProductID:    productID,
		IngredientID: req.IngredientID,
		QtyPerUnit:   req.QtyPerUnit,
	}
	if err := s.recipeRepo.Upsert(ctx, entry); err != nil {
		return err
	}

	s.logger.Info().
		Int64("product_id", productID).
		Int64("ingredient_id", req.IngredientID).
		Float64("qty_per_unit", req.QtyPerUnit).
		Msg("recipe entry saved")
	return nil
}

// RemoveRecipeEntry deletes one (product, ingredient) entry.
func (s *catalogService) RemoveRecipeEntry(ctx context.Context, productID, ingredientID int64) error {
	return s.recipeRepo.Delete(ctx, productID, ingredientID)
}

// CostOfGoods computes the ingredient cost (HPP) for one unit of the
// product. Pure read over current catalog state; no historical snapshot.
func (s *catalogService) CostOfGoods(ctx context.Context, productID int64) (float64, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return 0, err
	}

	cost, err := s.recipeRepo.CostOfGoods(ctx, productID)
	if err != nil {
		return 0, err
	}
	return cost, nil
}

func validateProductRequest(req *model.ProductRequest) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Product name is required")
	}
	if req.Price <= 0 {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Product price must be greater than zero")
	}
	return nil
}
