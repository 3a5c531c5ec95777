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

type operatorService struct {
	txManager    repository.TransactionManager
	operatorRepo repository.OperatorRepository
}

// NewOperatorService creates a new operator service instance.
func NewOperatorService(txManager repository.TransactionManager, operatorRepo repository.OperatorRepository) usecase.OperatorUsecase {
	return &operatorService{txManager: txManager, operatorRepo: operatorRepo}
}

func (s *operatorService) CreateOperator(ctx context.Context, operator *entity.Operator) (*entity.Operator, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OperatorRepo().Create(ctx, operator)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create operator")
	}

	return operator, nil
}

func (s *operatorService) GetOperators(ctx context.Context) ([]*entity.Operator, error) {
	operators, err := s.operatorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find operators")
	}

	return operators, nil
}

func (s *operatorService) GetOperator(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	operator, err := s.operatorRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOperatorNotFound) {
		return nil, domainerrors.ErrOperatorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find operator by ID")
	}

	return operator, nil
}

func (s *operatorService) UpdateOperator(ctx context.Context, id uuid.UUID, operator *entity.Operator) (*entity.Operator, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		operatorRepo := repoFactory.OperatorRepo()

		stored, err := operatorRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return domainerrors.ErrOperatorNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find operator by ID")
		}

		operator.ID = stored.ID
		operator.CreatedAt = stored.CreatedAt

		return operatorRepo.Save(ctx, operator)
	})
	if err != nil {
		return nil, err
	}

	return operator, nil
}

func (s *operatorService) DeleteOperator(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		operatorRepo := repoFactory.OperatorRepo()

		if _, err := operatorRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOperatorNotFound) {
				return domainerrors.ErrOperatorNotFound
			}

			return errors.Wrap(err, "failed to find operator by ID")
		}

		return operatorRepo.Delete(ctx, id)
	})
}
