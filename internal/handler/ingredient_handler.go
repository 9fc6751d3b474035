package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// IngredientHandler handles ingredient inventory HTTP requests.
type IngredientHandler struct {
	inventory service.InventoryService
	logger    zerolog.Logger
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(inventory service.InventoryService, logger zerolog.Logger) *IngredientHandler {
	return &IngredientHandler{
		inventory: inventory,
		logger:    logger.With().Str("handler", "ingredient").Logger(),
	}
}

// List handles GET /api/ingredients requests.
func (h *IngredientHandler) List(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.inventory.ListIngredients(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ingredients)
}

// Create handles POST /api/ingredients requests.
func (h *IngredientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	ingredient, err := h.inventory.CreateIngredient(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, ingredient)
}

// GetByID handles GET /api/ingredients/{id} requests.
func (h *IngredientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/ingredients/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid ingredient ID", h.logger)
		return
	}

	ingredient, err := h.inventory.GetIngredient(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ingredient)
}

// Update handles PUT /api/ingredients/{id} requests. The cost per unit is
// recomputed from the submitted pack price and weight.
func (h *IngredientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/ingredients/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid ingredient ID", h.logger)
		return
	}

	var req model.IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.inventory.UpdateIngredient(r.Context(), id, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
