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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByClothing retrieves every review belonging to the given clothing item.
func (repo *reviewRepository) FindByClothing(ctx context.Context, clothingID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("clothing_id = ?", clothingID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by clothing")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// FindByID retrieves a review by its unique ID regardless of its parent.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// Save overwrites every field of an existing review row.
func (repo *reviewRepository) Save(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Save(reviewM).Error; err != nil {
		return errors.Wrap(err, "failed to save review")
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Delete removes a review by its unique ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// toReviewDomain converts a GORM model to a domain entity. An absent author
// column maps to uuid.Nil on the entity.
func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	review := &entity.Review{
		ID:         reviewM.ID,
		ClothingID: reviewM.ClothingID,
		Rating:     reviewM.Rating,
		Comment:    reviewM.Comment,
		CreatedAt:  reviewM.CreatedAt,
		UpdatedAt:  reviewM.UpdatedAt,
	}

	if reviewM.UserID != nil {
		review.UserID = *reviewM.UserID
	}

	return review
}

// fromReviewDomain converts a domain entity to a GORM model. uuid.Nil on the
// entity maps to a NULL author column.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	reviewM := &model.ReviewModel{
		ID:         review.ID,
		ClothingID: review.ClothingID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	if review.UserID != uuid.Nil {
		userID := review.UserID
		reviewM.UserID = &userID
	}

	return reviewM
}
