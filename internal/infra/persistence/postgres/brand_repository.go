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

// brandRepository implements the repository.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{
		db: db,
	}
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		return errors.Wrap(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// FindAll retrieves every stored brand.
func (repo *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindByID retrieves a brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	return toBrandDomain(&brandM), nil
}

// Save overwrites every field of an existing brand row.
func (repo *brandRepository) Save(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Save(brandM).Error; err != nil {
		return errors.Wrap(err, "failed to save brand")
	}

	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// Delete removes a brand by its unique ID.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BrandModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// toBrandDomain converts a GORM model to a domain entity.
func toBrandDomain(brandM *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:        brandM.ID,
		Name:      brandM.Name,
		CreatedAt: brandM.CreatedAt,
		UpdatedAt: brandM.UpdatedAt,
	}
}

// fromBrandDomain converts a domain entity to a GORM model.
func fromBrandDomain(brand *entity.Brand) *model.BrandModel {
	return &model.BrandModel{
		ID:        brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
		UpdatedAt: brand.UpdatedAt,
	}
}
