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

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(txManager repository.TransactionManager, categoryRepo repository.CategoryRepository) usecase.CategoryUsecase {
	return &categoryService{txManager: txManager, categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CategoryRepo().Create(ctx, category)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, category *entity.Category) (*entity.Category, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		stored, err := categoryRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find category by ID")
		}

		category.ID = stored.ID
		category.CreatedAt = stored.CreatedAt

		return categoryRepo.Save(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category by ID")
		}

		return categoryRepo.Delete(ctx, id)
	})
}
