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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product together with any attached photos and videos.
// Variants go through their own workflow and are never written here.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).
		Omit("Variants").
		Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, photoM := range productM.Photos {
		product.Photos[i].ID = photoM.ID
		product.Photos[i].ProductID = photoM.ProductID
		product.Photos[i].CreatedAt = photoM.CreatedAt
	}
	for i, videoM := range productM.Videos {
		product.Videos[i].ID = videoM.ID
		product.Videos[i].ProductID = videoM.ProductID
		product.Videos[i].CreatedAt = videoM.CreatedAt
	}

	return nil
}

// FindAll retrieves every stored product.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a product by its unique ID with variants, photos and videos loaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants").
		Preload("Photos").
		Preload("Videos").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Save overwrites every field of an existing product row. Children are
// managed through their own workflows and stay untouched.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(productM).Error; err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product by its unique ID. Variants, photos and videos go
// with it through the cascading foreign keys.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain converts a GORM model to a domain entity. An absent
// category column maps to uuid.Nil on the entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          productM.ID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}

	if productM.CategoryID != nil {
		product.CategoryID = *productM.CategoryID
	}

	if len(productM.Variants) > 0 {
		product.Variants = make([]*entity.Variant, 0, len(productM.Variants))
		for _, variantM := range productM.Variants {
			variantM := variantM
			product.Variants = append(product.Variants, toVariantDomain(&variantM))
		}
	}

	if len(productM.Photos) > 0 {
		product.Photos = make([]*entity.Photo, 0, len(productM.Photos))
		for _, photoM := range productM.Photos {
			product.Photos = append(product.Photos, &entity.Photo{
				ID:        photoM.ID,
				ProductID: photoM.ProductID,
				URL:       photoM.URL,
				Caption:   photoM.Caption,
				CreatedAt: photoM.CreatedAt,
			})
		}
	}

	if len(productM.Videos) > 0 {
		product.Videos = make([]*entity.Video, 0, len(productM.Videos))
		for _, videoM := range productM.Videos {
			product.Videos = append(product.Videos, &entity.Video{
				ID:          videoM.ID,
				ProductID:   videoM.ProductID,
				URL:         videoM.URL,
				Description: videoM.Description,
				CreatedAt:   videoM.CreatedAt,
			})
		}
	}

	return product
}

// fromProductDomain converts a domain entity to a GORM model. uuid.Nil on
// the entity maps to a NULL category column.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	productM := &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.CategoryID != uuid.Nil {
		categoryID := product.CategoryID
		productM.CategoryID = &categoryID
	}

	for _, photo := range product.Photos {
		productM.Photos = append(productM.Photos, model.PhotoModel{
			ID:      photo.ID,
			URL:     photo.URL,
			Caption: photo.Caption,
		})
	}

	for _, video := range product.Videos {
		productM.Videos = append(productM.Videos, model.VideoModel{
			ID:          video.ID,
			URL:         video.URL,
			Description: video.Description,
		})
	}

	return productM
}
