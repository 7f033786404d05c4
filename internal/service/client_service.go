package service

import (
	"context"

	"fakturo/internal/domain"
	"fakturo/internal/port"
)

// ClientService manages invoice counterparties.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	clients port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clients port.ClientRepository) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) Create(ctx context.Context, client *domain.Client) error {
	if client.ClientName == "" {
		return domain.NewValidationError("client_name", "is required")
	}
	return s.clients.Create(ctx, client)
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Update(ctx context.Context, client *domain.Client) error {
	if client.ClientName == "" {
		return domain.NewValidationError("client_name", "is required")
	}
	return s.clients.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	return s.clients.Delete(ctx, id)
}
