package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/middleware"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a standardised error response carrying the request's
// correlation ID.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationID(r.Context())
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps a service-layer error onto an HTTP response.
// Domain errors keep their code and message; anything else is reported as
// an opaque internal error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Str("correlation_id", middleware.CorrelationID(r.Context())).Msg("internal error")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "something went wrong", logger)
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON,
		model.ErrCodeEmptyCart,
		model.ErrCodeInvalidQuantity,
		model.ErrCodeInvalidPayment,
		model.ErrCodeInvalidExpense:
		return http.StatusBadRequest
	case model.ErrCodeProductNotFound,
		model.ErrCodeIngredientNotFound,
		model.ErrCodeTransactionNotFound,
		model.ErrCodeEmployeeNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeInactiveAccount:
		return http.StatusForbidden
	case model.ErrCodeAlreadyCheckedIn,
		model.ErrCodeNotCheckedIn,
		model.ErrCodeDuplicateName:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// pathID extracts the numeric ID that follows prefix in the request path.
// Expecting paths like /api/products/{id} or /api/products/{id}/recipe.
func pathID(path, prefix string) (int64, error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" {
		return 0, errors.New("missing ID in path")
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return strconv.ParseInt(rest, 10, 64)
}

// dateRange reads the optional start and end query parameters (YYYY-MM-DD).
// Both days are inclusive. When absent the range covers the last 30 days.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now

	if s := r.URL.Query().Get("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("start must be in YYYY-MM-DD format")
		}
		start = parsed
	}
	if e := r.URL.Query().Get("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("end must be in YYYY-MM-DD format")
		}
		// Push to the end of the day so the whole day is covered.
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end must not be before start")
	}
	return start, end, nil
}
