package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// variantService implements the VariantUsecase interface.
type variantService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
	logger      *slog.Logger
}

// VariantServiceParams holds dependencies for VariantService, injected by Fx.
type VariantServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	VariantRepo repository.VariantRepository
	Logger      *slog.Logger
}

// NewVariantService is the constructor for variantService.
func NewVariantService(params VariantServiceParams) usecase.VariantUsecase {
	return &variantService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		variantRepo: params.VariantRepo,
		logger:      params.Logger,
	}
}

func (srv *variantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *variantService) requireProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) error {
	_, err := productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find product by ID")
	}

	return nil
}

// CreateVariant persists a variant under the given product.
func (srv *variantService) CreateVariant(ctx context.Context, productID uuid.UUID, variant *entity.Variant) (*entity.Variant, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory.ProductRepo(), productID); err != nil {
			return err
		}

		variant.ProductID = productID

		return repoFactory.VariantRepo().Create(ctx, variant)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create variant", slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	return variant, nil
}

// GetVariants returns every variant belonging to the product.
func (srv *variantService) GetVariants(ctx context.Context, productID uuid.UUID) ([]*entity.Variant, error) {
	if err := srv.requireProduct(ctx, srv.productRepo, productID); err != nil {
		return nil, err
	}

	variants, err := srv.variantRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variants by product")
	}

	return variants, nil
}

// GetVariant returns a single variant under the product.
func (srv *variantService) GetVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.Variant, error) {
	if err := srv.requireProduct(ctx, srv.productRepo, productID); err != nil {
		return nil, err
	}

	variant, err := srv.variantRepo.FindByID(ctx, variantID)
	if errors.Is(err, repository.ErrVariantNotFound) {
		return nil, domainerrors.ErrVariantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return variant, nil
}

// UpdateVariant overwrites the variant, pinning the path id and parent.
func (srv *variantService) UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, variant *entity.Variant) (*entity.Variant, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory.ProductRepo(), productID); err != nil {
			return err
		}

		variantRepo := repoFactory.VariantRepo()

		stored, err := variantRepo.FindByID(ctx, variantID)
		if errors.Is(err, repository.ErrVariantNotFound) {
			return domainerrors.ErrVariantNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find variant by ID")
		}

		variant.ID = stored.ID
		variant.ProductID = productID
		variant.CreatedAt = stored.CreatedAt

		return variantRepo.Save(ctx, variant)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update variant", slog.Any("variantID", variantID), slog.Any("error", err))

		return nil, err
	}

	return variant, nil
}

// DeleteVariant removes the variant after verifying it belongs to the
// path-supplied product.
func (srv *variantService) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory.ProductRepo(), productID); err != nil {
			return err
		}

		variantRepo := repoFactory.VariantRepo()

		stored, err := variantRepo.FindByID(ctx, variantID)
		if errors.Is(err, repository.ErrVariantNotFound) {
			return domainerrors.ErrVariantNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find variant by ID")
		}

		if stored.ProductID != productID {
			return domainerrors.ErrVariantNotInProduct
		}

		return variantRepo.Delete(ctx, variantID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete variant", slog.Any("variantID", variantID), slog.Any("error", err))

		return err
	}

	return nil
}
