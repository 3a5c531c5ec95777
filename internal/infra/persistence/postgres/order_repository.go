package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its details.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, detailM := range orderM.Details {
		order.Details[i].ID = detailM.ID
		order.Details[i].OrderID = detailM.OrderID
	}

	return nil
}

// FindAll retrieves every stored order with details loaded.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByID retrieves an order by its unique ID with details loaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Save overwrites the order row and replaces its details wholesale.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to save order")
	}

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderM.ID).
		Delete(&model.OrderDetailModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear order details")
	}

	if len(orderM.Details) > 0 {
		for i := range orderM.Details {
			orderM.Details[i].OrderID = orderM.ID
		}
		if err := repo.db.WithContext(ctx).Create(&orderM.Details).Error; err != nil {
			return errors.Wrap(err, "failed to save order details")
		}
		for i, detailM := range orderM.Details {
			order.Details[i].ID = detailM.ID
			order.Details[i].OrderID = detailM.OrderID
		}
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Delete removes an order by its unique ID. Details go with it through the
// cascading foreign key.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a GORM model to a domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         orderM.ID,
		OrderDate:  orderM.OrderDate,
		Status:     orderM.Status,
		UserID:     orderM.UserID,
		OperatorID: orderM.OperatorID,
		CreatedAt:  orderM.CreatedAt,
		UpdatedAt:  orderM.UpdatedAt,
	}

	if len(orderM.Details) > 0 {
		order.Details = make([]*entity.OrderDetail, 0, len(orderM.Details))
		for _, detailM := range orderM.Details {
			order.Details = append(order.Details, &entity.OrderDetail{
				ID:        detailM.ID,
				OrderID:   detailM.OrderID,
				ProductID: detailM.ProductID,
				Quantity:  detailM.Quantity,
				Price:     detailM.Price,
			})
		}
	}

	return order
}

// fromOrderDomain converts a domain entity to a GORM model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:         order.ID,
		OrderDate:  order.OrderDate,
		Status:     order.Status,
		UserID:     order.UserID,
		OperatorID: order.OperatorID,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	for _, detail := range order.Details {
		orderM.Details = append(orderM.Details, model.OrderDetailModel{
			ID:        detail.ID,
			OrderID:   detail.OrderID,
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
			Price:     detail.Price,
		})
	}

	return orderM
}
