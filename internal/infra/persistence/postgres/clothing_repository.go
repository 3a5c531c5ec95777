package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clothingRepository implements the repository.ClothingRepository interface.
type clothingRepository struct {
	db *gorm.DB
}

// NewClothingRepository is the constructor for clothingRepository.
func NewClothingRepository(db *gorm.DB) repository.ClothingRepository {
	return &clothingRepository{
		db: db,
	}
}

// Create persists a new clothing item.
func (repo *clothingRepository) Create(ctx context.Context, clothing *entity.Clothing) error {
	clothingM := fromClothingDomain(clothing)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(clothingM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}

		return errors.Wrap(err, "failed to create clothing item")
	}

	// Update the entity with generated values
	clothing.ID = clothingM.ID
	clothing.CreatedAt = clothingM.CreatedAt
	clothing.UpdatedAt = clothingM.UpdatedAt

	return nil
}

// FindAll retrieves every stored clothing item with its brand loaded.
func (repo *clothingRepository) FindAll(ctx context.Context) ([]*entity.Clothing, error) {
	var clothingModels []*model.ClothingModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Order("created_at DESC").
		Find(&clothingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clothing items")
	}

	items := make([]*entity.Clothing, 0, len(clothingModels))
	for _, clothingM := range clothingModels {
		items = append(items, toClothingDomain(clothingM))
	}

	return items, nil
}

// FindByID retrieves a clothing item by its unique ID with brand and designers loaded.
func (repo *clothingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Clothing, error) {
	var clothingM model.ClothingModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Designers").
		Where("id = ?", id).
		First(&clothingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClothingNotFound
		}

		return nil, errors.Wrap(err, "failed to find clothing item by ID")
	}

	return toClothingDomain(&clothingM), nil
}

// FindBySKU retrieves the clothing item carrying the given SKU.
func (repo *clothingRepository) FindBySKU(ctx context.Context, sku string) (*entity.Clothing, error) {
	var clothingM model.ClothingModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Where("sku = ?", sku).
		First(&clothingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClothingNotFound
		}

		return nil, errors.Wrap(err, "failed to find clothing item by SKU")
	}

	return toClothingDomain(&clothingM), nil
}

// Save overwrites every field of an existing clothing item row.
func (repo *clothingRepository) Save(ctx context.Context, clothing *entity.Clothing) error {
	clothingM := fromClothingDomain(clothing)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(clothingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}

		return errors.Wrap(err, "failed to save clothing item")
	}

	clothing.UpdatedAt = clothingM.UpdatedAt

	return nil
}

// Delete removes a clothing item by its unique ID, clearing designer links first.
func (repo *clothingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ClothingModel{ID: id}).
		Association("Designers").
		Clear(); err != nil {
		return errors.Wrap(err, "failed to clear designer links")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClothingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete clothing item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClothingNotFound
	}

	return nil
}

// toClothingDomain converts a GORM model to a domain entity.
func toClothingDomain(clothingM *model.ClothingModel) *entity.Clothing {
	clothing := &entity.Clothing{
		ID:          clothingM.ID,
		Name:        clothingM.Name,
		SKU:         clothingM.SKU,
		Image:       clothingM.Image,
		Description: clothingM.Description,
		ReleaseDate: clothingM.ReleaseDate,
		CreatedAt:   clothingM.CreatedAt,
		UpdatedAt:   clothingM.UpdatedAt,
	}

	if clothingM.Brand != nil {
		clothing.Brand = toBrandDomain(clothingM.Brand)
	}

	if len(clothingM.Designers) > 0 {
		clothing.Designers = make([]*entity.Designer, 0, len(clothingM.Designers))
		for _, designerM := range clothingM.Designers {
			clothing.Designers = append(clothing.Designers, &entity.Designer{
				ID:        designerM.ID,
				Name:      designerM.Name,
				CreatedAt: designerM.CreatedAt,
				UpdatedAt: designerM.UpdatedAt,
			})
		}
	}

	return clothing
}

// fromClothingDomain converts a domain entity to a GORM model. Associations
// are carried by ID only; brand and designer rows are never written here.
func fromClothingDomain(clothing *entity.Clothing) *model.ClothingModel {
	clothingM := &model.ClothingModel{
		ID:          clothing.ID,
		Name:        clothing.Name,
		SKU:         clothing.SKU,
		Image:       clothing.Image,
		Description: clothing.Description,
		ReleaseDate: clothing.ReleaseDate,
		CreatedAt:   clothing.CreatedAt,
		UpdatedAt:   clothing.UpdatedAt,
	}

	if clothing.Brand != nil {
		clothingM.BrandID = clothing.Brand.ID
	}

	return clothingM
}
