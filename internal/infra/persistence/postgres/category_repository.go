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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return errors.Wrap(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindAll retrieves every stored category.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// Save overwrites every field of an existing category row.
func (repo *categoryRepository) Save(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Save(categoryM).Error; err != nil {
		return errors.Wrap(err, "failed to save category")
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Delete removes a category by its unique ID.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// toCategoryDomain converts a GORM model to a domain entity.
func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          categoryM.ID,
		Name:        categoryM.Name,
		Description: categoryM.Description,
		CreatedAt:   categoryM.CreatedAt,
		UpdatedAt:   categoryM.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain entity to a GORM model.
func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
