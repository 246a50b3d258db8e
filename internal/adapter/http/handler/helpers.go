package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/codezxmax/finanzas/internal/adapter/http/dto"
	"github.com/codezxmax/finanzas/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes: validation
// errors are the user's to correct, not-found means a stale selection,
// conflict means the operation was refused.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountHasTransactions):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyAccountName),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateQuery parses a YYYY-MM-DD query parameter, returning
// fallback when absent or unparseable.
func parseDateQuery(r *http.Request, key string, fallback time.Time) time.Time {
	val := r.URL.Query().Get(key)
	if val == "" {
		return fallback
	}
	d, err := domain.ParseDate(val)
	if err != nil {
		return fallback
	}
	return d
}

// parseMonthQuery parses a YYYY-MM query parameter into a reference
// date inside that month, defaulting to now.
func parseMonthQuery(r *http.Request, key string) time.Time {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Now()
	}
	ref, err := time.Parse("2006-01", val)
	if err != nil {
		return time.Now()
	}
	return ref
}
