package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product together with any attached photos and videos.
	Create(ctx context.Context, product *entity.Product) error

	// FindAll retrieves every stored product.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a product by id with its variants, photos and videos loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Save overwrites every field of an existing product row.
	Save(ctx context.Context, product *entity.Product) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
