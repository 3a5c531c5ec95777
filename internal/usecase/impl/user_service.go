package impl

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
}

// NewUserService creates a new user service instance.
func NewUserService(txManager repository.TransactionManager, userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{txManager: txManager, userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, user *entity.User) (*entity.User, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		stored, err := userRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by ID")
		}

		user.ID = stored.ID
		user.CreatedAt = stored.CreatedAt

		return userRepo.Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by ID")
		}

		return userRepo.Delete(ctx, id)
	})
}
