package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order together with its details in one statement batch.
	Create(ctx context.Context, order *entity.Order) error

	// FindAll retrieves every stored order with details loaded.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves an order by id with details loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Save overwrites the order row and replaces its details wholesale.
	Save(ctx context.Context, order *entity.Order) error

	// Delete removes an order and its details by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
