// internal/handlers/clients.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	service ports.ClientService
	logger  *slog.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(service ports.ClientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "clients")),
	}
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToDomain converts the request into a domain client
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	client := req.ToDomain()
	if err := h.service.Create(ctx, client); err != nil {
		h.logger.ErrorContext(ctx, "failed to create client",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "client not found")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, client)
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, limit := parsePageParams(r)

	result, err := h.service.List(ctx, page, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list clients",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "clients not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id format")
		return
	}

	client, err := h.service.Get(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get client",
			slog.String("client_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "client not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, client)
}

// Update handles PATCH /api/v1/clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id format")
		return
	}

	var patch domain.ClientPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	client, err := h.service.Update(ctx, id, patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update client",
			slog.String("client_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "client not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, client)
}

// Delete handles DELETE /api/v1/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id format")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete client",
			slog.String("client_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "client not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message":   "client deleted successfully",
		"client_id": id.String(),
	})
}
