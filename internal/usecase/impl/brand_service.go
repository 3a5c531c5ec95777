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

type brandService struct {
	txManager repository.TransactionManager
	brandRepo repository.BrandRepository
}

// NewBrandService creates a new brand service instance.
func NewBrandService(txManager repository.TransactionManager, brandRepo repository.BrandRepository) usecase.BrandUsecase {
	return &brandService{txManager: txManager, brandRepo: brandRepo}
}

func (s *brandService) CreateBrand(ctx context.Context, brand *entity.Brand) (*entity.Brand, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BrandRepo().Create(ctx, brand)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	return brand, nil
}

func (s *brandService) GetBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := s.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brands")
	}

	return brands, nil
}

func (s *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBrandNotFound) {
		return nil, domainerrors.ErrBrandNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	return brand, nil
}

func (s *brandService) UpdateBrand(ctx context.Context, id uuid.UUID, brand *entity.Brand) (*entity.Brand, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brandRepo := repoFactory.BrandRepo()

		stored, err := brandRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrBrandNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find brand by ID")
		}

		brand.ID = stored.ID
		brand.CreatedAt = stored.CreatedAt

		return brandRepo.Save(ctx, brand)
	})
	if err != nil {
		return nil, err
	}

	return brand, nil
}

func (s *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brandRepo := repoFactory.BrandRepo()

		if _, err := brandRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return domainerrors.ErrBrandNotFound
			}

			return errors.Wrap(err, "failed to find brand by ID")
		}

		return brandRepo.Delete(ctx, id)
	})
}
