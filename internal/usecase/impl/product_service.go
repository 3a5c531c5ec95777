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

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance.
func NewProductService(txManager repository.TransactionManager, productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{txManager: txManager, productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (s *productService) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, product *entity.Product) (*entity.Product, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		stored, err := productRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find product by ID")
		}

		product.ID = stored.ID
		product.CreatedAt = stored.CreatedAt

		return productRepo.Save(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product by ID")
		}

		return productRepo.Delete(ctx, id)
	})
}
