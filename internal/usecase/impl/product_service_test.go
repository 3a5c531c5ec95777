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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	t           *testing.T
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(txManager, productRepo)

	return productServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{Name: "Linen Shirt", Price: 49.90}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ProductRepo().Return(txProductRepo)

		txProductRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(ctx context.Context, product *entity.Product) {
				product.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateProduct(ctx, product)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

// The existence check and the write share one transaction-bound repository.
func TestProductService_UpdateProduct_PinsStoredIdentity(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Name: "Old Shirt", Price: 39.90}
	replacement := &entity.Product{ID: uuid.New(), Name: "Linen Shirt", Price: 49.90}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ProductRepo().Return(txProductRepo)

		txProductRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
		txProductRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	})

	updated, err := fx.service.UpdateProduct(ctx, productID, replacement)

	require.NoError(t, err)
	assert.Equal(t, productID, updated.ID)
	assert.Equal(t, "Linen Shirt", updated.Name)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ProductRepo().Return(txProductRepo)

		txProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.UpdateProduct(ctx, productID, &entity.Product{Name: "Shirt"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ProductRepo().Return(txProductRepo)

		txProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		txProductRepo.EXPECT().Delete(ctx, productID).Return(nil)
	})

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}
