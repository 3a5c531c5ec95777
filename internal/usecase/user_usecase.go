package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the generic CRUD workflow for users. Creation has no
// cross-entity constraint and persists unconditionally.
type UserUsecase interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
