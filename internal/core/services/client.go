// internal/core/services/client.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// ClientService handles client business logic
type ClientService struct {
	repo   ports.ClientRepository
	logger *slog.Logger
}

// Statically assert that *ClientService implements the ClientService interface.
var _ ports.ClientService = (*ClientService)(nil)

// NewClientService creates a new client service
func NewClientService(repo ports.ClientRepository, logger *slog.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		logger: logger.With(slog.String("service", "client")),
	}
}

// Create validates and stores a new client
func (s *ClientService) Create(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	client.PrepareForStorage()

	if err := s.repo.Create(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.InfoContext(ctx, "client created",
		slog.String("client_id", client.ID.String()),
		slog.String("email", client.Email))

	return nil
}

// List returns one page of clients in insertion order
func (s *ClientService) List(ctx context.Context, page, limit int) (*ports.ListResult[domain.Client], error) {
	result, err := listPage(ctx, s.repo, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return result, nil
}

// Get retrieves a client by id
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// Update applies a partial update and returns the resulting client
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (*domain.Client, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.logger.InfoContext(ctx, "client updated",
		slog.String("client_id", id.String()),
		slog.Bool("empty_patch", patch.IsEmpty()))

	return client, nil
}

// Delete removes a client and, through the schema, its sales
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.logger.InfoContext(ctx, "client deleted",
		slog.String("client_id", id.String()))

	return nil
}
