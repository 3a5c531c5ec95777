package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVariantNotFound is returned when a variant is not found.
var ErrVariantNotFound = errors.New("variant not found")

// VariantRepository defines the interface for variant-related database operations.
type VariantRepository interface {
	// Create persists a new variant and fills in the generated id and timestamps.
	Create(ctx context.Context, variant *entity.Variant) error

	// FindByProduct retrieves every variant belonging to the given product.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Variant, error)

	// FindByID retrieves a variant by id regardless of its parent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error)

	// Save overwrites every field of an existing variant.
	Save(ctx context.Context, variant *entity.Variant) error

	// Delete removes a variant by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
