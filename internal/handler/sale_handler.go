package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/receipt"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// SaleHandler handles checkout and transaction HTTP requests.
type SaleHandler struct {
	sales     service.SaleService
	employees service.EmployeeService
	logger    zerolog.Logger
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(sales service.SaleService, employees service.EmployeeService, logger zerolog.Logger) *SaleHandler {
	return &SaleHandler{
		sales:     sales,
		employees: employees,
		logger:    logger.With().Str("handler", "sale").Logger(),
	}
}

// Create handles POST /api/sales requests. A cart that cannot be fulfilled
// is not an error: the sale is rejected as a whole and the response carries
// every shortage in one message.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	result, err := h.sales.ProcessSale(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusConflict, result)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// GetByID handles GET /api/transactions/{id} requests.
func (h *SaleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	id, err := pathID(r.URL.Path, "/api/transactions/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid transaction ID", h.logger)
		return
	}

	trx, items, err := h.sales.GetTransaction(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Transaction *model.Transaction      `json:"transaction"`
		Items       []model.TransactionItem `json:"items"`
	}{Transaction: trx, Items: items})
}

// Receipt handles GET /api/transactions/{id}/receipt requests, returning a
// printable text receipt.
func (h *SaleHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	id, err := pathID(r.URL.Path, "/api/transactions/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid transaction ID", h.logger)
		return
	}

	trx, items, err := h.sales.GetTransaction(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	// The cashier name is cosmetic; a failed lookup leaves it blank.
	cashier := ""
	if emp, err := h.employees.GetEmployee(r.Context(), trx.EmployeeID); err == nil {
		cashier = emp.Name
	} else if !errors.Is(err, model.ErrEmployeeNotFound) {
		h.logger.Warn().Err(err).Int64("employee_id", trx.EmployeeID).Msg("cashier lookup failed")
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt.Build(trx, items, cashier).Render()))
}

// Void handles DELETE /api/transactions/{id} requests, restoring the stock
// the transaction consumed and removing it from history.
func (h *SaleHandler) Void(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	id, err := pathID(r.URL.Path, "/api/transactions/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid transaction ID", h.logger)
		return
	}

	if err := h.sales.VoidTransaction(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Purge handles DELETE /api/admin/transactions requests.
func (h *SaleHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	if err := h.sales.PurgeTransactions(r.Context()); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
