package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// AttendanceHandler handles shift check-in/out HTTP requests.
type AttendanceHandler struct {
	attendance service.AttendanceService
	logger     zerolog.Logger
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendance service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendance: attendance,
		logger:     logger.With().Str("handler", "attendance").Logger(),
	}
}

type attendanceRequest struct {
	EmployeeID int64 `json:"employeeId"`
}

// CheckIn handles POST /api/attendance/check-in requests.
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	att, err := h.attendance.CheckIn(r.Context(), req.EmployeeID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, att)
}

// CheckOut handles POST /api/attendance/check-out requests.
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.attendance.CheckOut(r.Context(), req.EmployeeID); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/attendance/{employeeId} requests.
func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	employeeID, err := pathID(r.URL.Path, "/api/attendance/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid employee ID", h.logger)
		return
	}

	records, err := h.attendance.History(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Purge handles DELETE /api/admin/attendance requests.
func (h *AttendanceHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	if err := h.attendance.PurgeAttendance(r.Context()); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
