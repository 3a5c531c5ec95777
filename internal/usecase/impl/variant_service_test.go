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

// variantServiceFixtures holds all test dependencies for variant service tests.
type variantServiceFixtures struct {
	t           *testing.T
	service     usecase.VariantUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	variantRepo *mockRepo.MockVariantRepository
}

func createTestVariantService(t *testing.T) variantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	service := NewVariantService(VariantServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		VariantRepo: variantRepo,
		Logger:      newDiscardLogger(),
	})

	return variantServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

func (f variantServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestVariantService_CreateVariant_Success(t *testing.T) {
	fx := createTestVariantService(t)

	ctx := context.Background()
	productID := uuid.New()
	variant := &entity.Variant{
		Color: "navy",
		Size:  "M",
		Stock: 12,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockVariantRepo := mockRepo.NewMockVariantRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().VariantRepo().Return(mockVariantRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockVariantRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Variant")).
			Run(func(ctx context.Context, variant *entity.Variant) {
				variant.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateVariant(ctx, productID, variant)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, productID, created.ProductID)
}

func TestVariantService_CreateVariant_ProductNotFound(t *testing.T) {
	fx := createTestVariantService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.CreateVariant(ctx, productID, &entity.Variant{Color: "navy"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestVariantService_GetVariants_Success(t *testing.T) {
	fx := createTestVariantService(t)

	ctx := context.Background()
	productID := uuid.New()
	expected := []*entity.Variant{
		{ID: uuid.New(), ProductID: productID, Color: "navy", Size: "M"},
		{ID: uuid.New(), ProductID: productID, Color: "navy", Size: "L"},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.variantRepo.EXPECT().FindByProduct(ctx, productID).Return(expected, nil)

	variants, err := fx.service.GetVariants(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expected, variants)
}

func TestVariantService_UpdateVariant_Success(t *testing.T) {
	fx := createTestVariantService(t)

	ctx := context.Background()
	productID := uuid.New()
	variantID := uuid.New()
	stored := &entity.Variant{ID: variantID, ProductID: productID, Color: "navy", Size: "M", Stock: 2}
	replacement := &entity.Variant{Color: "navy", Size: "M", Stock: 20}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockVariantRepo := mockRepo.NewMockVariantRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().VariantRepo().Return(mockVariantRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockVariantRepo.EXPECT().FindByID(ctx, variantID).Return(stored, nil)
		mockVariantRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Variant")).Return(nil)
	})

	updated, err := fx.service.UpdateVariant(ctx, productID, variantID, replacement)

	require.NoError(t, err)
	assert.Equal(t, variantID, updated.ID)
	assert.Equal(t, productID, updated.ProductID)
	assert.Equal(t, 20, updated.Stock)
}

func TestVariantService_DeleteVariant_ForeignParent(t *testing.T) {
	fx := createTestVariantService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Variant{ID: uuid.New(), ProductID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockVariantRepo := mockRepo.NewMockVariantRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().VariantRepo().Return(mockVariantRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockVariantRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	})

	err := fx.service.DeleteVariant(ctx, productID, stored.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotInProduct))
}

func TestVariantService_DeleteVariant_Success(t *testing.T) {
	fx := createTestVariantService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Variant{ID: uuid.New(), ProductID: productID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockVariantRepo := mockRepo.NewMockVariantRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().VariantRepo().Return(mockVariantRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockVariantRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		mockVariantRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)
	})

	err := fx.service.DeleteVariant(ctx, productID, stored.ID)

	require.NoError(t, err)
}
