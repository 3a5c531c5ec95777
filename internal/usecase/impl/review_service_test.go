package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	t            *testing.T
	service      usecase.ReviewUsecase
	txManager    *mockRepo.MockTransactionManager
	clothingRepo *mockRepo.MockClothingRepository
	reviewRepo   *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clothingRepo := mockRepo.NewMockClothingRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(ReviewServiceParams{
		TxManager:    txManager,
		ClothingRepo: clothingRepo,
		ReviewRepo:   reviewRepo,
		Logger:       newDiscardLogger(),
	})

	return reviewServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		clothingRepo: clothingRepo,
		reviewRepo:   reviewRepo,
	}
}

func (f reviewServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	review := &entity.Review{
		UserID:  uuid.New(),
		Rating:  5,
		Comment: "Excellent coat",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
		mockReviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Run(func(ctx context.Context, review *entity.Review) {
				review.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateReview(ctx, clothingID, review)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, clothingID, created.ClothingID)
}

func TestReviewService_GetReviews_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	expected := []*entity.Review{
		{ID: uuid.New(), ClothingID: clothingID, Rating: 4},
		{ID: uuid.New(), ClothingID: clothingID, Rating: 2},
	}

	fx.clothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
	fx.reviewRepo.EXPECT().FindByClothing(ctx, clothingID).Return(expected, nil)

	reviews, err := fx.service.GetReviews(ctx, clothingID)

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

// A review stored under a different clothing item is still returned by a
// plain fetch; only delete enforces the stored parent linkage.
func TestReviewService_GetReview_ForeignParentStillReturned(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	otherClothingID := uuid.New()
	stored := &entity.Review{
		ID:         uuid.New(),
		ClothingID: otherClothingID,
		Rating:     3,
	}

	fx.clothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
	fx.reviewRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	review, err := fx.service.GetReview(ctx, clothingID, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, review)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	reviewID := uuid.New()
	stored := &entity.Review{
		ID:         reviewID,
		ClothingID: clothingID,
		Rating:     2,
		Comment:    "meh",
	}
	replacement := &entity.Review{
		Rating:  4,
		Comment: "better after a wash",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
		mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
		mockReviewRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	})

	updated, err := fx.service.UpdateReview(ctx, clothingID, reviewID, replacement)

	require.NoError(t, err)
	assert.Equal(t, reviewID, updated.ID)
	assert.Equal(t, clothingID, updated.ClothingID)
	assert.Equal(t, 4, updated.Rating)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	reviewID := uuid.New()
	stored := &entity.Review{
		ID:         reviewID,
		ClothingID: clothingID,
		Rating:     1,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(&entity.Clothing{ID: clothingID}, nil)
		mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
		mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
	})

	err := fx.service.DeleteReview(ctx, clothingID, reviewID)

	require.NoError(t, err)
}
