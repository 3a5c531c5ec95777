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

func TestClothingService_CreateClothing_MissingBrand(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothing := newTestClothing(nil)

	_, err := fx.service.CreateClothing(ctx, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBrandReference))
}

func TestClothingService_CreateClothing_UnknownBrand(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	brandID := uuid.New()
	clothing := newTestClothing(&entity.Brand{ID: brandID})

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBrandRepo := mockRepo.NewMockBrandRepository(t)
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().BrandRepo().Return(mockBrandRepo)
		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockBrandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)
	})

	_, err := fx.service.CreateClothing(ctx, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBrandReference))
}

func TestClothingService_CreateClothing_EmptySKU(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	storedBrand := newTestBrand()
	clothing := newTestClothing(&entity.Brand{ID: storedBrand.ID})
	clothing.SKU = ""

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBrandRepo := mockRepo.NewMockBrandRepository(t)
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().BrandRepo().Return(mockBrandRepo)
		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockBrandRepo.EXPECT().FindByID(ctx, storedBrand.ID).Return(storedBrand, nil)
	})

	_, err := fx.service.CreateClothing(ctx, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSKU))
}

// The brand reference is checked before the SKU, so a request that is wrong
// on both counts reports the brand problem.
func TestClothingService_CreateClothing_UnknownBrandAndEmptySKU(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	brandID := uuid.New()
	clothing := newTestClothing(&entity.Brand{ID: brandID})
	clothing.SKU = ""

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBrandRepo := mockRepo.NewMockBrandRepository(t)
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().BrandRepo().Return(mockBrandRepo)
		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockBrandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)
	})

	_, err := fx.service.CreateClothing(ctx, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBrandReference))
}

func TestClothingService_CreateClothing_DuplicateSKU(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	storedBrand := newTestBrand()
	clothing := newTestClothing(&entity.Brand{ID: storedBrand.ID})
	existing := &entity.Clothing{ID: uuid.New(), SKU: clothing.SKU}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBrandRepo := mockRepo.NewMockBrandRepository(t)
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().BrandRepo().Return(mockBrandRepo)
		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockBrandRepo.EXPECT().FindByID(ctx, storedBrand.ID).Return(storedBrand, nil)
		mockClothingRepo.EXPECT().FindBySKU(ctx, clothing.SKU).Return(existing, nil)
	})

	_, err := fx.service.CreateClothing(ctx, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSKU))
}

func TestClothingService_CreateClothing_SKULookupError(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	storedBrand := newTestBrand()
	clothing := newTestClothing(&entity.Brand{ID: storedBrand.ID})

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBrandRepo := mockRepo.NewMockBrandRepository(t)
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().BrandRepo().Return(mockBrandRepo)
		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockBrandRepo.EXPECT().FindByID(ctx, storedBrand.ID).Return(storedBrand, nil)
		mockClothingRepo.EXPECT().FindBySKU(ctx, clothing.SKU).Return(nil, errors.New("db error"))
	})

	_, err := fx.service.CreateClothing(ctx, clothing)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find clothing by SKU")
}

func TestClothingService_GetClothing_NotFound(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()

	fx.clothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)

	_, err := fx.service.GetClothing(ctx, clothingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}

func TestClothingService_UpdateClothing_NotFound(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	clothing := newTestClothing(newTestBrand())

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)
	})

	_, err := fx.service.UpdateClothing(ctx, clothingID, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}

// A missing item wins over an invalid replacement: updating an absent id
// reports not-found even when the replacement SKU is empty.
func TestClothingService_UpdateClothing_NotFoundBeforeSKUCheck(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	clothing := newTestClothing(nil)
	clothing.SKU = ""

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)
	})

	_, err := fx.service.UpdateClothing(ctx, clothingID, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}

func TestClothingService_UpdateClothing_EmptySKU(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	stored := &entity.Clothing{
		ID:    clothingID,
		Name:  "Coat",
		SKU:   "COAT-001",
		Brand: newTestBrand(),
	}
	clothing := newTestClothing(newTestBrand())
	clothing.SKU = ""

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(stored, nil)
	})

	_, err := fx.service.UpdateClothing(ctx, clothingID, clothing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSKU))
}

func TestClothingService_DeleteClothing_NotFound(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(nil, repository.ErrClothingNotFound)
	})

	err := fx.service.DeleteClothing(ctx, clothingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingNotFound))
}

func TestClothingService_DeleteClothing_HasDesigners(t *testing.T) {
	fx := createTestClothingService(t)

	ctx := context.Background()
	clothingID := uuid.New()
	stored := &entity.Clothing{
		ID:    clothingID,
		Name:  "Coat",
		SKU:   "COAT-001",
		Brand: newTestBrand(),
		Designers: []*entity.Designer{
			{ID: uuid.New(), Name: "A. Designer"},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockClothingRepo := mockRepo.NewMockClothingRepository(t)

		factory.EXPECT().ClothingRepo().Return(mockClothingRepo)

		mockClothingRepo.EXPECT().FindByID(ctx, clothingID).Return(stored, nil)
	})

	err := fx.service.DeleteClothing(ctx, clothingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClothingHasDesigners))
}
