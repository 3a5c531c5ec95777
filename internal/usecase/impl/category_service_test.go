package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	t            *testing.T
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(txManager, categoryRepo)

	return categoryServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	category := &entity.Category{Name: "Outerwear"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txCategoryRepo := mockRepo.NewMockCategoryRepository(t)

		factory.EXPECT().CategoryRepo().Return(txCategoryRepo)

		txCategoryRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Category")).
			Run(func(ctx context.Context, category *entity.Category) {
				category.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateCategory(ctx, category)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.GetCategory(ctx, categoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

// The existence check and the write share one transaction-bound repository.
func TestCategoryService_UpdateCategory_PinsStoredIdentity(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	stored := &entity.Category{ID: categoryID, Name: "Old Name"}
	replacement := &entity.Category{ID: uuid.New(), Name: "Outerwear"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txCategoryRepo := mockRepo.NewMockCategoryRepository(t)

		factory.EXPECT().CategoryRepo().Return(txCategoryRepo)

		txCategoryRepo.EXPECT().FindByID(ctx, categoryID).Return(stored, nil)
		txCategoryRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	})

	updated, err := fx.service.UpdateCategory(ctx, categoryID, replacement)

	require.NoError(t, err)
	assert.Equal(t, categoryID, updated.ID)
	assert.Equal(t, "Outerwear", updated.Name)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txCategoryRepo := mockRepo.NewMockCategoryRepository(t)

		factory.EXPECT().CategoryRepo().Return(txCategoryRepo)

		txCategoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)
	})

	err := fx.service.DeleteCategory(ctx, categoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
