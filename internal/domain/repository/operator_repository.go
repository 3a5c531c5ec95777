package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOperatorNotFound is returned when an operator is not found.
var ErrOperatorNotFound = errors.New("operator not found")

// OperatorRepository defines the interface for operator-related database operations.
type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.Operator) error
	FindAll(ctx context.Context) ([]*entity.Operator, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
	Save(ctx context.Context, operator *entity.Operator) error
	Delete(ctx context.Context, id uuid.UUID) error
}
