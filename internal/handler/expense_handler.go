package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// ExpenseHandler handles expense tracking HTTP requests.
type ExpenseHandler struct {
	expenses service.ExpenseService
	logger   zerolog.Logger
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenses service.ExpenseService, logger zerolog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenses: expenses,
		logger:   logger.With().Str("handler", "expense").Logger(),
	}
}

// List handles GET /api/expenses requests.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.ListExpenses(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// Create handles POST /api/expenses requests.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	expense, err := h.expenses.RecordExpense(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// Purge handles DELETE /api/admin/expenses requests.
func (h *ExpenseHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	if err := h.expenses.PurgeExpenses(r.Context()); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
