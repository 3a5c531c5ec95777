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

// brandServiceFixtures holds all test dependencies for brand service tests.
type brandServiceFixtures struct {
	t         *testing.T
	service   usecase.BrandUsecase
	txManager *mockRepo.MockTransactionManager
	brandRepo *mockRepo.MockBrandRepository
}

func createTestBrandService(t *testing.T) brandServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	brandRepo := mockRepo.NewMockBrandRepository(t)
	service := NewBrandService(txManager, brandRepo)

	return brandServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		brandRepo: brandRepo,
	}
}

func TestBrandService_CreateBrand_Success(t *testing.T) {
	fx := createTestBrandService(t)

	ctx := context.Background()
	brand := &entity.Brand{Name: "Maison Nord"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBrandRepo := mockRepo.NewMockBrandRepository(t)

		factory.EXPECT().BrandRepo().Return(txBrandRepo)

		txBrandRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Brand")).
			Run(func(ctx context.Context, brand *entity.Brand) {
				brand.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateBrand(ctx, brand)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestBrandService_GetBrand_NotFound(t *testing.T) {
	fx := createTestBrandService(t)

	ctx := context.Background()
	brandID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	_, err := fx.service.GetBrand(ctx, brandID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
}

// The existence check and the write both run through the transaction-bound
// repository; the stored identity is pinned onto the replacement.
func TestBrandService_UpdateBrand_PinsStoredIdentity(t *testing.T) {
	fx := createTestBrandService(t)

	ctx := context.Background()
	brandID := uuid.New()
	stored := &entity.Brand{ID: brandID, Name: "Old Name"}
	replacement := &entity.Brand{ID: uuid.New(), Name: "New Name"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBrandRepo := mockRepo.NewMockBrandRepository(t)

		factory.EXPECT().BrandRepo().Return(txBrandRepo)

		txBrandRepo.EXPECT().FindByID(ctx, brandID).Return(stored, nil)
		txBrandRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Brand")).Return(nil)
	})

	updated, err := fx.service.UpdateBrand(ctx, brandID, replacement)

	require.NoError(t, err)
	assert.Equal(t, brandID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
}

func TestBrandService_UpdateBrand_NotFound(t *testing.T) {
	fx := createTestBrandService(t)

	ctx := context.Background()
	brandID := uuid.New()
	replacement := &entity.Brand{Name: "New Name"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBrandRepo := mockRepo.NewMockBrandRepository(t)

		factory.EXPECT().BrandRepo().Return(txBrandRepo)

		txBrandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)
	})

	_, err := fx.service.UpdateBrand(ctx, brandID, replacement)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
}

func TestBrandService_DeleteBrand_Success(t *testing.T) {
	fx := createTestBrandService(t)

	ctx := context.Background()
	brandID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBrandRepo := mockRepo.NewMockBrandRepository(t)

		factory.EXPECT().BrandRepo().Return(txBrandRepo)

		txBrandRepo.EXPECT().FindByID(ctx, brandID).Return(&entity.Brand{ID: brandID}, nil)
		txBrandRepo.EXPECT().Delete(ctx, brandID).Return(nil)
	})

	err := fx.service.DeleteBrand(ctx, brandID)

	require.NoError(t, err)
}

func TestBrandService_DeleteBrand_NotFound(t *testing.T) {
	fx := createTestBrandService(t)

	ctx := context.Background()
	brandID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBrandRepo := mockRepo.NewMockBrandRepository(t)

		factory.EXPECT().BrandRepo().Return(txBrandRepo)

		txBrandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)
	})

	err := fx.service.DeleteBrand(ctx, brandID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
}
