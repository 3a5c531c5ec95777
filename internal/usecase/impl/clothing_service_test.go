package impl

import (
	"context"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// clothingServiceFixtures holds all test dependencies for clothing service tests.
type clothingServiceFixtures struct {
	t            *testing.T
	service      usecase.ClothingUsecase
	txManager    *mockRepo.MockTransactionManager
	clothingRepo *mockRepo.MockClothingRepository
}

func createTestClothingService(t *testing.T) clothingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clothingRepo := mockRepo.NewMockClothingRepository(t)
	service := NewClothingService(ClothingServiceParams{
		TxManager:    txManager,
		ClothingRepo: clothingRepo,
		Logger:       newDiscardLogger(),
	})

	return clothingServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		clothingRepo: clothingRepo,
	}
}

// onExecute arranges the transaction manager to run the transactional
// function against a factory configured by setup, propagating its error.
func (f clothingServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func newTestBrand() *entity.Brand {
	return &entity.Brand{
		ID:   uuid.New(),
		Name: "Stored Brand",
	}
}

func newTestClothing(brand *entity.Brand) *entity.Clothing {
	return &entity.Clothing{
		Name:        "Wool Coat",
		SKU:         "COAT-001",
		Image:       "https://cdn.example.com/coat.jpg",
		Description: "A heavy wool coat",
		ReleaseDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Brand:       brand,
	}
}

func TestClothingService_CreateClothing_Success(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	storedBrand := newTestBrand()
	// The caller only supplies the brand id; the stored brand must win.
	clothing := newTestClothing(&entity.Brand{ID: storedBrand.ID, Name: "Caller Supplied"})

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBrandRepo := mockRepo.NewMockBrandRepository(t)
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().BrandRepo().Return(mockBrandRepo)
		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockBrandRepo.EXPECT().FindByID(ctx, storedBrand.ID).Return(storedBrand, nil)
		mockClothingRepo.EXPECT().FindBySKU(ctx, clothing.SKU).Return(nil, repository.ErrClothingNotFound)
		mockClothingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Clothing")).
			Run(func(ctx context.Context, clothing *entity.Clothing) {
				clothing.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateClothing(ctx, clothing)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "COAT-001", created.SKU)
	assert.Equal(t, storedBrand, created.Brand)
	assert.Equal(t, "Stored Brand", created.Brand.Name)
}

func TestClothingService_GetClothingItems_Success(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	expected := []*entity.Clothing{
		{ID: uuid.New(), Name: "Coat", SKU: "COAT-001"},
		{ID: uuid.New(), Name: "Scarf", SKU: "SCARF-002"},
	}

	fx.clothingRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	items, err := fx.service.GetClothingItems(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestClothingService_GetClothing_Success(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	expected := &entity.Clothing{
		ID:    uuid.New(),
		Name:  "Coat",
		SKU:   "COAT-001",
		Brand: newTestBrand(),
	}

	fx.clothingRepo.EXPECT().FindByID(ctx, expected.ID).Return(expected, nil)

	item, err := fx.service.GetClothing(ctx, expected.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, item)
}

func TestClothingService_UpdateClothing_Success(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	storedBrand := newTestBrand()
	clothingID := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := &entity.Clothing{
		ID:        clothingID,
		Name:      "Old Coat",
		SKU:       "COAT-001",
		Brand:     storedBrand,
		CreatedAt: createdAt,
	}

	replacement := newTestClothing(&entity.Brand{ID: storedBrand.ID})
	replacement.ID = uuid.New() // body-supplied id must be ignored

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(stored, nil)
		mockClothingRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Clothing")).Return(nil)
	})

	updated, err := fx.service.UpdateClothing(ctx, clothingID, replacement)

	require.NoError(t, err)
	assert.Equal(t, clothingID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, storedBrand.ID, updated.Brand.ID)
	assert.Equal(t, "Wool Coat", updated.Name)
}

// A replacement that names no brand keeps the stored brand reference.
func TestClothingService_UpdateClothing_WithoutBrand(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	storedBrand := newTestBrand()
	clothingID := uuid.New()
	stored := &entity.Clothing{
		ID:    clothingID,
		Name:  "Old Coat",
		SKU:   "COAT-001",
		Brand: storedBrand,
	}

	replacement := newTestClothing(nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(stored, nil)
		mockClothingRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Clothing")).Return(nil)
	})

	updated, err := fx.service.UpdateClothing(ctx, clothingID, replacement)

	require.NoError(t, err)
	assert.Equal(t, clothingID, updated.ID)
	assert.Equal(t, storedBrand, updated.Brand)
	assert.Equal(t, "Wool Coat", updated.Name)
}

func TestClothingService_DeleteClothing_Success(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	stored := &entity.Clothing{
		ID:    clothingID,
		Name:  "Coat",
		SKU:   "COAT-001",
		Brand: newTestBrand(),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(stored, nil)
		mockClothingRepo.EXPECT().Delete(ctx, clothingID).Return(nil)
	})

	err := fx.service.DeleteClothing(ctx, clothingID)

	require.NoError(t, err)
}

func TestClothingService_DeleteClothing_AfterDesignersRemoved(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	stored := &entity.Clothing{
		ID:        clothingID,
		Name:      "Coat",
		SKU:       "COAT-001",
		Brand:     newTestBrand(),
		Designers: []*entity.Designer{},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(stored, nil)
		mockClothingRepo.EXPECT().Delete(ctx, clothingID).Return(nil)
	})

	err := fx.service.DeleteClothing(ctx, clothingID)

	require.NoError(t, err)
}
