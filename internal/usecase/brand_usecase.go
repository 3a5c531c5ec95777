package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// BrandUsecase defines the generic CRUD workflow for brands.
type BrandUsecase interface {
	CreateBrand(ctx context.Context, brand *entity.Brand) (*entity.Brand, error)
	GetBrands(ctx context.Context) ([]*entity.Brand, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, brand *entity.Brand) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}
