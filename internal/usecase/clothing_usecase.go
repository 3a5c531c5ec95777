// Package usecase defines the application's business interfaces, one per
// entity family, consumed by the HTTP delivery.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ClothingUsecase defines the validated create/update/delete workflow for
// clothing items. Every mutating operation validates against stored state
// before writing; a validation failure guarantees the store was not touched.
type ClothingUsecase interface {
	// CreateClothing validates the brand reference and the SKU (non-empty,
	// unique) and persists the item with the canonical stored brand attached.
	CreateClothing(ctx context.Context, clothing *entity.Clothing) (*entity.Clothing, error)

	// GetClothingItems returns every stored clothing item.
	GetClothingItems(ctx context.Context) ([]*entity.Clothing, error)

	// GetClothing returns the clothing item with the given id.
	GetClothing(ctx context.Context, id uuid.UUID) (*entity.Clothing, error)

	// UpdateClothing overwrites the stored item with the replacement, pinning
	// the path-supplied id. The SKU must be non-empty.
	UpdateClothing(ctx context.Context, id uuid.UUID, clothing *entity.Clothing) (*entity.Clothing, error)

	// DeleteClothing removes the item unless designers are still associated.
	DeleteClothing(ctx context.Context, id uuid.UUID) error
}
