package commands

import (
	"context"

	"procure-chef/internal/domain/quote"
	"procure-chef/internal/domain/request"

	"github.com/google/uuid"
)

// Write-side repository ports, implemented by the persistence collaborator.
type RequestRepository interface {
	Create(ctx context.Context, req *request.Request) error
	Update(ctx context.Context, req *request.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	FindAll(ctx context.Context) ([]*request.Request, error)
}

type QuoteRepository interface {
	Save(ctx context.Context, q *quote.Quote) error
}
