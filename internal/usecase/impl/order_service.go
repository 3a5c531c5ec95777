package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateReferences checks the user, operator and per-detail product
// references against stored state.
func (srv *orderService) validateReferences(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	if _, err := repoFactory.UserRepo().FindByID(ctx, order.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidUserReference.WrapMessage("referenced user does not exist")
		}

		return errors.Wrap(err, "failed to find user by ID")
	}

	if _, err := repoFactory.OperatorRepo().FindByID(ctx, order.OperatorID); err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return domainerrors.ErrInvalidOperatorReference.WrapMessage("referenced operator does not exist")
		}

		return errors.Wrap(err, "failed to find operator by ID")
	}

	productRepo := repoFactory.ProductRepo()
	for _, detail := range order.Details {
		if _, err := productRepo.FindByID(ctx, detail.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrInvalidProductReference.WrapMessage("referenced product does not exist")
			}

			return errors.Wrap(err, "failed to find product by ID")
		}
	}

	return nil
}

// CreateOrder validates every reference the order carries, then persists the
// order and its details in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if order.UserID == uuid.Nil {
		return nil, domainerrors.ErrInvalidUserReference.WrapMessage("order carries no user reference")
	}
	if order.OperatorID == uuid.Nil {
		return nil, domainerrors.ErrInvalidOperatorReference.WrapMessage("order carries no operator reference")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.validateReferences(ctx, repoFactory, order); err != nil {
			return err
		}

		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("userID", order.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID))

	return order, nil
}

// GetOrders returns every stored order.
func (srv *orderService) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return orders, nil
}

// GetOrder returns the order with the given id.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// UpdateOrder overwrites the stored order after revalidating its references.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, order *entity.Order) (*entity.Order, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		stored, err := orderRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order by ID")
		}

		if err := srv.validateReferences(ctx, repoFactory, order); err != nil {
			return err
		}

		order.ID = stored.ID
		order.CreatedAt = stored.CreatedAt

		return orderRepo.Save(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update order", slog.Any("orderID", id), slog.Any("error", err))

		return nil, err
	}

	return order, nil
}

// DeleteOrder removes the order and its details.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if _, err := orderRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order by ID")
		}

		return orderRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete order", slog.Any("orderID", id), slog.Any("error", err))

		return err
	}

	return nil
}
