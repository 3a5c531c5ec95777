package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the order workflow. Creation validates the user,
// operator and per-detail product references before anything is written.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, order *entity.Order) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
