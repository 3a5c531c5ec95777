package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the parent-scoped review workflow. Every operation
// checks that the parent clothing item exists before touching the review.
type ReviewUsecase interface {
	// CreateReview persists a review under the given clothing item, attaching
	// the canonical parent reference.
	CreateReview(ctx context.Context, clothingID uuid.UUID, review *entity.Review) (*entity.Review, error)

	// GetReviews returns every review belonging to the clothing item.
	GetReviews(ctx context.Context, clothingID uuid.UUID) ([]*entity.Review, error)

	// GetReview returns a single review. The parent's existence is checked,
	// but the stored parent linkage is not cross-checked on plain fetch.
	GetReview(ctx context.Context, clothingID, reviewID uuid.UUID) (*entity.Review, error)

	// UpdateReview overwrites the review, pinning the path id and the
	// canonical parent reference.
	UpdateReview(ctx context.Context, clothingID, reviewID uuid.UUID, review *entity.Review) (*entity.Review, error)

	// DeleteReview removes the review after verifying it actually belongs to
	// the path-supplied clothing item.
	DeleteReview(ctx context.Context, clothingID, reviewID uuid.UUID) error
}
