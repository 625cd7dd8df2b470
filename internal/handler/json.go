package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bazaar/internal/domain"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeDomainError maps a domain error to its HTTP status and body.
// Errors outside the domain taxonomy are logged and reported as a
// generic 500 so internals never reach the client.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoSuchUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "login required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, domain.ErrForbidden.Error())
	case errors.Is(err, domain.ErrNoSuchProduct),
		errors.Is(err, domain.ErrNoSuchPurchase):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotEnoughStock),
		errors.Is(err, domain.ErrPurchaseAlreadyPaid),
		errors.Is(err, domain.ErrBulkCountMismatch),
		errors.Is(err, domain.ErrDuplicateUser):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
