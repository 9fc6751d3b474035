package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// EmployeeHandler handles staff account HTTP requests.
type EmployeeHandler struct {
	employees service.EmployeeService
	logger    zerolog.Logger
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employees service.EmployeeService, logger zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employees: employees,
		logger:    logger.With().Str("handler", "employee").Logger(),
	}
}

// Login handles POST /api/login requests.
func (h *EmployeeHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	emp, err := h.employees.Authenticate(r.Context(), req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// List handles GET /api/employees requests.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// Create handles POST /api/employees requests.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	emp, err := h.employees.CreateEmployee(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, emp)
}

// Update handles PUT /api/employees/{id} requests.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/api/employees/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid employee ID", h.logger)
		return
	}

	var req model.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.employees.UpdateEmployee(r.Context(), id, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
