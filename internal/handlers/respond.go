// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

// successResponse is the envelope for every successful reply.
type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// errorResponse is the envelope for every failed reply.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(successResponse{Status: "success", Data: data}); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(errorResponse{Status: "error", Message: message}); err != nil {
		logger.Error("failed to encode JSON error response",
			slog.String("error", err.Error()))
	}
}

// respondDomainError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an internal error and its detail stays
// out of the response body.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConstraintViolation):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		respondError(w, logger, http.StatusServiceUnavailable, "storage temporarily unavailable")
	default:
		respondError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}

// parsePageParams reads the page and limit query parameters. Malformed or
// absent values fall back to zero and let the domain resolver apply bounds.
func parsePageParams(r *http.Request) (page, limit int) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = p
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil {
			limit = l
		}
	}
	return page, limit
}
