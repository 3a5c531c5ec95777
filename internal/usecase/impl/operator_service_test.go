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

// operatorServiceFixtures holds all test dependencies for operator service tests.
type operatorServiceFixtures struct {
	t            *testing.T
	service      usecase.OperatorUsecase
	txManager    *mockRepo.MockTransactionManager
	operatorRepo *mockRepo.MockOperatorRepository
}

func createTestOperatorService(t *testing.T) operatorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	operatorRepo := mockRepo.NewMockOperatorRepository(t)
	service := NewOperatorService(txManager, operatorRepo)

	return operatorServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		operatorRepo: operatorRepo,
	}
}

func TestOperatorService_CreateOperator_Success(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	operator := &entity.Operator{Name: "Ops One", Email: "ops@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txOperatorRepo := mockRepo.NewMockOperatorRepository(t)

		factory.EXPECT().OperatorRepo().Return(txOperatorRepo)

		txOperatorRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Operator")).
			Run(func(ctx context.Context, operator *entity.Operator) {
				operator.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateOperator(ctx, operator)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestOperatorService_GetOperator_NotFound(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	operatorID := uuid.New()

	fx.operatorRepo.EXPECT().FindByID(ctx, operatorID).Return(nil, repository.ErrOperatorNotFound)

	_, err := fx.service.GetOperator(ctx, operatorID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOperatorNotFound))
}

// The existence check and the write share one transaction-bound repository.
func TestOperatorService_UpdateOperator_PinsStoredIdentity(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	operatorID := uuid.New()
	stored := &entity.Operator{ID: operatorID, Name: "Old Ops", Email: "ops@example.com"}
	replacement := &entity.Operator{ID: uuid.New(), Name: "Ops One", Email: "ops@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txOperatorRepo := mockRepo.NewMockOperatorRepository(t)

		factory.EXPECT().OperatorRepo().Return(txOperatorRepo)

		txOperatorRepo.EXPECT().FindByID(ctx, operatorID).Return(stored, nil)
		txOperatorRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Operator")).Return(nil)
	})

	updated, err := fx.service.UpdateOperator(ctx, operatorID, replacement)

	require.NoError(t, err)
	assert.Equal(t, operatorID, updated.ID)
	assert.Equal(t, "Ops One", updated.Name)
}

func TestOperatorService_DeleteOperator_NotFound(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	operatorID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txOperatorRepo := mockRepo.NewMockOperatorRepository(t)

		factory.EXPECT().OperatorRepo().Return(txOperatorRepo)

		txOperatorRepo.EXPECT().FindByID(ctx, operatorID).Return(nil, repository.ErrOperatorNotFound)
	})

	err := fx.service.DeleteOperator(ctx, operatorID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOperatorNotFound))
}
