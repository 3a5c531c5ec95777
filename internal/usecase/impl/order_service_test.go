package impl

import (
	"context"
	"testing"
	"time"

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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t         *testing.T
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func (f orderServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func newTestOrder(userID, operatorID, productID uuid.UUID) *entity.Order {
	return &entity.Order{
		OrderDate:  time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
		Status:     "pending",
		UserID:     userID,
		OperatorID: operatorID,
		Details: []*entity.OrderDetail{
			{ProductID: productID, Quantity: 2, Price: 59.90},
		},
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	operatorID := uuid.New()
	productID := uuid.New()
	order := newTestOrder(userID, operatorID, productID)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockOperatorRepo := mockRepo.NewMockOperatorRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().OperatorRepo().Return(mockOperatorRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockOperatorRepo.EXPECT().FindByID(ctx, operatorID).Return(&entity.Operator{ID: operatorID}, nil)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateOrder(ctx, order)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestOrderService_CreateOrder_MissingUserReference(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newTestOrder(uuid.Nil, uuid.New(), uuid.New())

	_, err := fx.service.CreateOrder(ctx, order)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUserReference))
}

func TestOrderService_CreateOrder_UnknownUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := newTestOrder(userID, uuid.New(), uuid.New())

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.CreateOrder(ctx, order)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUserReference))
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	operatorID := uuid.New()
	productID := uuid.New()
	order := newTestOrder(userID, operatorID, productID)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockOperatorRepo := mockRepo.NewMockOperatorRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().OperatorRepo().Return(mockOperatorRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockOperatorRepo.EXPECT().FindByID(ctx, operatorID).Return(&entity.Operator{ID: operatorID}, nil)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.CreateOrder(ctx, order)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductReference))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
		mockOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil)
	})

	err := fx.service.DeleteOrder(ctx, orderID)

	require.NoError(t, err)
}
