package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// variantRepository implements the repository.VariantRepository interface.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{
		db: db,
	}
}

// Create persists a new variant.
func (repo *variantRepository) Create(ctx context.Context, variant *entity.Variant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		return errors.Wrap(err, "failed to create variant")
	}

	variant.ID = variantM.ID
	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

// FindByProduct retrieves every variant belonging to the given product.
func (repo *variantRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Variant, error) {
	var variantModels []*model.VariantModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variants by product")
	}

	variants := make([]*entity.Variant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// FindByID retrieves a variant by its unique ID regardless of its parent.
func (repo *variantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	var variantM model.VariantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// Save overwrites every field of an existing variant row.
func (repo *variantRepository) Save(ctx context.Context, variant *entity.Variant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Save(variantM).Error; err != nil {
		return errors.Wrap(err, "failed to save variant")
	}

	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

// Delete removes a variant by its unique ID.
func (repo *variantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VariantModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete variant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// toVariantDomain converts a GORM model to a domain entity.
func toVariantDomain(variantM *model.VariantModel) *entity.Variant {
	return &entity.Variant{
		ID:        variantM.ID,
		ProductID: variantM.ProductID,
		Color:     variantM.Color,
		Size:      variantM.Size,
		Stock:     variantM.Stock,
		CreatedAt: variantM.CreatedAt,
		UpdatedAt: variantM.UpdatedAt,
	}
}

// fromVariantDomain converts a domain entity to a GORM model.
func fromVariantDomain(variant *entity.Variant) *model.VariantModel {
	return &model.VariantModel{
		ID:        variant.ID,
		ProductID: variant.ProductID,
		Color:     variant.Color,
		Size:      variant.Size,
		Stock:     variant.Stock,
		CreatedAt: variant.CreatedAt,
		UpdatedAt: variant.UpdatedAt,
	}
}
