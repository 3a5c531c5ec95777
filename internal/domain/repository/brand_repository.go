package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBrandNotFound is returned when a brand is not found.
var ErrBrandNotFound = errors.New("brand not found")

// BrandRepository defines the interface for brand-related database operations.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindAll(ctx context.Context) ([]*entity.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	Save(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}
