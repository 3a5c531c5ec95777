// Package impl contains the implementation of the application's business logic.
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

// clothingService implements the ClothingUsecase interface.
type clothingService struct {
	txManager    repository.TransactionManager
	clothingRepo repository.ClothingRepository
	logger       *slog.Logger
}

// ClothingServiceParams holds dependencies for ClothingService, injected by Fx.
type ClothingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ClothingRepo repository.ClothingRepository
	Logger       *slog.Logger
}

// NewClothingService is the constructor for clothingService.
func NewClothingService(params ClothingServiceParams) usecase.ClothingUsecase {
	return &clothingService{
		txManager:    params.TxManager,
		clothingRepo: params.ClothingRepo,
		logger:       params.Logger,
	}
}

func (srv *clothingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClothing validates the brand reference and SKU before persisting.
// Validation runs against stored state inside the same transaction as the
// write, so a rejected request never reaches the store.
func (srv *clothingService) CreateClothing(ctx context.Context, clothing *entity.Clothing) (*entity.Clothing, error) {
	if clothing.Brand == nil || clothing.Brand.ID == uuid.Nil {
		return nil, domainerrors.ErrInvalidBrandReference.WrapMessage("clothing item carries no brand reference")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brandRepo := repoFactory.BrandRepo()
		clothingRepo := repoFactory.ClothingRepo()

		// Checks run in order: brand reference, SKU shape, SKU uniqueness.
		brand, err := brandRepo.FindByID(ctx, clothing.Brand.ID)
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrInvalidBrandReference.WrapMessage("referenced brand does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find brand by ID")
		}

		if clothing.SKU == "" {
			return domainerrors.ErrInvalidSKU.WrapMessage("SKU must not be empty")
		}

		_, err = clothingRepo.FindBySKU(ctx, clothing.SKU)
		if err == nil {
			return domainerrors.ErrDuplicateSKU.WrapMessage("another clothing item already carries this SKU")
		}
		if !errors.Is(err, repository.ErrClothingNotFound) {
			return errors.Wrap(err, "failed to find clothing by SKU")
		}

		// Attach the stored brand so the persisted item never carries
		// caller-supplied brand fields.
		clothing.Brand = brand

		return clothingRepo.Create(ctx, clothing)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create clothing item", slog.String("sku", clothing.SKU), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Clothing item created", slog.Any("clothingID", clothing.ID), slog.String("sku", clothing.SKU))

	return clothing, nil
}

// GetClothingItems returns every stored clothing item.
func (srv *clothingService) GetClothingItems(ctx context.Context) ([]*entity.Clothing, error) {
	items, err := srv.clothingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find clothing items")
	}

	return items, nil
}

// GetClothing returns the clothing item with the given id.
func (srv *clothingService) GetClothing(ctx context.Context, id uuid.UUID) (*entity.Clothing, error) {
	item, err := srv.clothingRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrClothingNotFound) {
		return nil, domainerrors.ErrClothingNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find clothing by ID")
	}

	return item, nil
}

// UpdateClothing overwrites the stored item with the replacement. The item
// must exist and the replacement SKU must be non-empty; the SKU is not
// rechecked for uniqueness and the brand reference is not re-resolved (the
// unique index and the brand foreign key backstop both at commit).
func (srv *clothingService) UpdateClothing(ctx context.Context, id uuid.UUID, clothing *entity.Clothing) (*entity.Clothing, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clothingRepo := repoFactory.ClothingRepo()

		stored, err := clothingRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrClothingNotFound) {
			return domainerrors.ErrClothingNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find clothing by ID")
		}

		if clothing.SKU == "" {
			return domainerrors.ErrInvalidSKU.WrapMessage("SKU must not be empty")
		}

		clothing.ID = stored.ID
		clothing.CreatedAt = stored.CreatedAt
		if clothing.Brand == nil {
			// The brand column cannot be unset; a replacement without a
			// brand keeps the stored one.
			clothing.Brand = stored.Brand
		}

		return clothingRepo.Save(ctx, clothing)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update clothing item", slog.Any("clothingID", id), slog.Any("error", err))

		return nil, err
	}

	return clothing, nil
}

// DeleteClothing removes the item unless designers are still associated.
func (srv *clothingService) DeleteClothing(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clothingRepo := repoFactory.ClothingRepo()

		stored, err := clothingRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrClothingNotFound) {
			return domainerrors.ErrClothingNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find clothing by ID")
		}

		if len(stored.Designers) > 0 {
			return domainerrors.ErrClothingHasDesigners
		}

		return clothingRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete clothing item", slog.Any("clothingID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Clothing item deleted", slog.Any("clothingID", id))

	return nil
}
