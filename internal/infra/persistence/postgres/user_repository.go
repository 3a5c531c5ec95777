package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user together with an initial cart when one is attached.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Cart != nil && userM.Cart != nil {
		user.Cart.ID = userM.Cart.ID
		user.Cart.UserID = userM.Cart.UserID
		user.Cart.CreatedAt = userM.Cart.CreatedAt
		user.Cart.UpdatedAt = userM.Cart.UpdatedAt
	}

	return nil
}

// FindAll retrieves every stored user with their cart loaded.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Cart").
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindByID retrieves a user by its unique ID with their cart loaded.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Cart").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// Save overwrites every field of an existing user row. The cart is never
// rewritten here.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(userM).Error; err != nil {
		return errors.Wrap(err, "failed to save user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes a user and their cart by the user's unique ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a GORM model to a domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:        userM.ID,
		Name:      userM.Name,
		Email:     userM.Email,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}

	if userM.Cart != nil {
		user.Cart = &entity.Cart{
			ID:        userM.Cart.ID,
			UserID:    userM.Cart.UserID,
			CreatedAt: userM.Cart.CreatedAt,
			UpdatedAt: userM.Cart.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain entity to a GORM model.
func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Cart != nil {
		userM.Cart = &model.CartModel{
			ID:     user.Cart.ID,
			UserID: user.Cart.UserID,
		}
	}

	return userM
}
