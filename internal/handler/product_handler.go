package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product catalog and recipe HTTP requests.
type ProductHandler struct {
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID", h.logger)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID", h.logger)
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.catalog.UpdateProduct(r.Context(), id, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRecipe handles GET /api/products/{id}/recipe requests.
func (h *ProductHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID", h.logger)
		return
	}

	entries, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// SetRecipeEntry handles PUT /api/products/{id}/recipe requests, inserting
// or replacing one (product, ingredient) entry.
func (h *ProductHandler) SetRecipeEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID", h.logger)
		return
	}

	var req model.RecipeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.catalog.SetRecipeEntry(r.Context(), id, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveRecipeEntry handles DELETE /api/products/{id}/recipe/{ingredientId}
// requests.
func (h *ProductHandler) RemoveRecipeEntry(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID", h.logger)
		return
	}

	idx := strings.LastIndexByte(r.URL.Path, '/')
	ingredientID, err := strconv.ParseInt(r.URL.Path[idx+1:], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid ingredient ID", h.logger)
		return
	}

	if err := h.catalog.RemoveRecipeEntry(r.Context(), productID, ingredientID); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CostOfGoods handles GET /api/products/{id}/cost requests, reporting the
// ingredient cost (HPP) for one unit of the product.
func (h *ProductHandler) CostOfGoods(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID", h.logger)
		return
	}

	cost, err := h.catalog.CostOfGoods(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		ProductID   int64   `json:"productId"`
		CostOfGoods float64 `json:"costOfGoods"`
	}{ProductID: id, CostOfGoods: cost})
}
