package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// VariantUsecase defines the product-scoped variant workflow, mirroring the
// review workflow: the parent product is checked on every operation and a
// delete is rejected when the stored parent differs from the path parent.
type VariantUsecase interface {
	CreateVariant(ctx context.Context, productID uuid.UUID, variant *entity.Variant) (*entity.Variant, error)
	GetVariants(ctx context.Context, productID uuid.UUID) ([]*entity.Variant, error)
	GetVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.Variant, error)
	UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, variant *entity.Variant) (*entity.Variant, error)
	DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error
}
