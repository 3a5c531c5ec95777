package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Create persists a new review and fills in the generated id and timestamps.
	Create(ctx context.Context, review *entity.Review) error

	// FindByClothing retrieves every review belonging to the given clothing item.
	FindByClothing(ctx context.Context, clothingID uuid.UUID) ([]*entity.Review, error)

	// FindByID retrieves a review by id regardless of its parent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Save overwrites every field of an existing review.
	Save(ctx context.Context, review *entity.Review) error

	// Delete removes a review by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
