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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t         *testing.T
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(txManager, userRepo)

	return userServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{Name: "Test User", Email: "test@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)
	})

	created, err := fx.service.CreateUser(ctx, user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "test@example.com", created.Email)
}

func TestUserService_GetUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	users, err := fx.service.GetUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

// The existence check and the write share one transaction-bound repository.
func TestUserService_UpdateUser_PinsStoredIdentity(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Name: "Old Name", Email: "old@example.com"}
	replacement := &entity.User{ID: uuid.New(), Name: "New Name", Email: "new@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
		txUserRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	updated, err := fx.service.UpdateUser(ctx, userID, replacement)

	require.NoError(t, err)
	assert.Equal(t, userID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.UpdateUser(ctx, userID, &entity.User{Name: "New Name"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		txUserRepo.EXPECT().Delete(ctx, userID).Return(nil)
	})

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.DeleteUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
