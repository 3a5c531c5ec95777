package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the generic CRUD workflow for products.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, product *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CategoryUsecase defines the generic CRUD workflow for categories.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	GetCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, category *entity.Category) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// OperatorUsecase defines the generic CRUD workflow for operators.
type OperatorUsecase interface {
	CreateOperator(ctx context.Context, operator *entity.Operator) (*entity.Operator, error)
	GetOperators(ctx context.Context) ([]*entity.Operator, error)
	GetOperator(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
	UpdateOperator(ctx context.Context, id uuid.UUID, operator *entity.Operator) (*entity.Operator, error)
	DeleteOperator(ctx context.Context, id uuid.UUID) error
}
