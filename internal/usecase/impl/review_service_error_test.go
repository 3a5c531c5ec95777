package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestReviewService_CreateReview_ClothingNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	review := &entity.Review{Rating: 5}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)
	})

	_, err := fx.service.CreateReview(ctx, clothingID, review)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}

func TestReviewService_GetReviews_ClothingNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()

	fx.clothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)

	_, err := fx.service.GetReviews(ctx, clothingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}

func TestReviewService_GetReview_ReviewNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	reviewID := uuid.New()

	fx.clothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.GetReview(ctx, clothingID, reviewID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_UpdateReview_ReviewNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	reviewID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
		mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)
	})

	_, err := fx.service.UpdateReview(ctx, clothingID, reviewID, &entity.Review{Rating: 3})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

// Deleting through a foreign parent is rejected even though the plain fetch
// tolerates it.
func TestReviewService_DeleteReview_ForeignParent(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	otherClothingID := uuid.New()
	stored := &entity.Review{
		ID:         uuid.New(),
		ClothingID: otherClothingID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
		mockReviewRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	})

	err := fx.service.DeleteReview(ctx, clothingID, stored.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotInClothing))
}

func TestReviewService_DeleteReview_ClothingNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	reviewID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)
	})

	err := fx.service.DeleteReview(ctx, clothingID, reviewID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}
