package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// operatorRepository implements the repository.OperatorRepository interface.
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository is the constructor for operatorRepository.
func NewOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &operatorRepository{
		db: db,
	}
}

// Create persists a new operator.
func (repo *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	operatorM := fromOperatorDomain(operator)

	if err := repo.db.WithContext(ctx).Create(operatorM).Error; err != nil {
		return errors.Wrap(err, "failed to create operator")
	}

	operator.ID = operatorM.ID
	operator.CreatedAt = operatorM.CreatedAt
	operator.UpdatedAt = operatorM.UpdatedAt

	return nil
}

// FindAll retrieves every stored operator.
func (repo *operatorRepository) FindAll(ctx context.Context) ([]*entity.Operator, error) {
	var operatorModels []*model.OperatorModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&operatorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find operators")
	}

	operators := make([]*entity.Operator, 0, len(operatorModels))
	for _, operatorM := range operatorModels {
		operators = append(operators, toOperatorDomain(operatorM))
	}

	return operators, nil
}

// FindByID retrieves an operator by its unique ID.
func (repo *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operatorM model.OperatorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&operatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find operator by ID")
	}

	return toOperatorDomain(&operatorM), nil
}

// Save overwrites every field of an existing operator row.
func (repo *operatorRepository) Save(ctx context.Context, operator *entity.Operator) error {
	operatorM := fromOperatorDomain(operator)

	if err := repo.db.WithContext(ctx).Save(operatorM).Error; err != nil {
		return errors.Wrap(err, "failed to save operator")
	}

	operator.UpdatedAt = operatorM.UpdatedAt

	return nil
}

// Delete removes an operator by its unique ID.
func (repo *operatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OperatorModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete operator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperatorNotFound
	}

	return nil
}

// toOperatorDomain converts a GORM model to a domain entity.
func toOperatorDomain(operatorM *model.OperatorModel) *entity.Operator {
	return &entity.Operator{
		ID:        operatorM.ID,
		Name:      operatorM.Name,
		Email:     operatorM.Email,
		CreatedAt: operatorM.CreatedAt,
		UpdatedAt: operatorM.UpdatedAt,
	}
}

// fromOperatorDomain converts a domain entity to a GORM model.
func fromOperatorDomain(operator *entity.Operator) *model.OperatorModel {
	return &model.OperatorModel{
		ID:        operator.ID,
		Name:      operator.Name,
		Email:     operator.Email,
		CreatedAt: operator.CreatedAt,
		UpdatedAt: operator.UpdatedAt,
	}
}
