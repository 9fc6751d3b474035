package handler

import (
	"net/http"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
)

// ReportHandler handles financial reporting HTTP requests. All endpoints
// accept optional start and end query parameters (YYYY-MM-DD, inclusive)
// and default to the last 30 days.
type ReportHandler struct {
	reports service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reports service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger.With().Str("handler", "report").Logger(),
	}
}

// Summary handles GET /api/reports/summary requests.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}

	summary, err := h.reports.Summary(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// DailyRevenue handles GET /api/reports/daily-revenue requests.
func (h *ReportHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}

	points, err := h.reports.DailyRevenue(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// TopProducts handles GET /api/reports/top-products requests.
func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}

	sales, err := h.reports.TopProducts(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

// ExpensesByCategory handles GET /api/reports/expenses-by-category requests.
func (h *ReportHandler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}

	totals, err := h.reports.ExpensesByCategory(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// ProductMargins handles GET /api/reports/product-margins requests.
func (h *ReportHandler) ProductMargins(w http.ResponseWriter, r *http.Request) {
	margins, err := h.reports.ProductMargins(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, margins)
}
