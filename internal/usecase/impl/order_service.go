// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "aeon/internal/delivery/context"
	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/usecase"

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

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates the input, writes the header and every item in one transaction,
// then reads the joined order back outside the transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateCreateOrder(&input); err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID:      input.CustomerID,
		TotalAmount:     input.TotalAmount,
		Status:          input.Status,
		PaymentMethodID: input.PaymentMethodID,
	}
	items := make([]entity.OrderItem, 0, len(input.Items))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order header")
		}

		for i, in := range input.Items {
			item := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				Price:     in.Price,
			}
			if err := orderRepo.CreateItem(ctx, &item); err != nil {
				return errors.Wrapf(err, "failed to create order item %d", i)
			}
			items = append(items, item)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order",
			slog.Any("customer_id", input.CustomerID),
			slog.Int("items", len(input.Items)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute create order transaction")
	}

	srv.log(ctx).Info("Order created", slog.Any("order_id", order.ID), slog.Int("items", len(items)))

	created, err := srv.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		// The order is committed; a failed read-back only degrades the response.
		srv.log(ctx).Warn("Failed to read back created order", slog.Any("order_id", order.ID), slog.Any("error", err))
		order.Items = items

		return order, nil
	}

	return created, nil
}

func validateCreateOrder(input *usecase.CreateOrderInput) error {
	if input.CustomerID == 0 || !input.TotalAmount.IsPositive() || len(input.Items) == 0 {
		return domainerrors.ErrOrderMissingFields
	}

	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity <= 0 || !item.Price.IsPositive() {
			return domainerrors.ErrOrderItemInvalid
		}
	}

	if input.Status == "" {
		input.Status = entity.OrderStatusPending
	}
	if !input.Status.IsValid() {
		return domainerrors.ErrOrderStatusInvalid
	}

	return nil
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uint) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) UpdateOrder(ctx context.Context, id uint, input usecase.UpdateOrderInput) (*entity.Order, error) {
	if input.CustomerID == 0 {
		return nil, domainerrors.ErrOrderMissingFields
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrOrderStatusInvalid
	}

	order := &entity.Order{
		ID:          id,
		CustomerID:  input.CustomerID,
		TotalAmount: input.TotalAmount,
		Status:      input.Status,
	}
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	return order, nil
}

// DeleteOrder removes items before the header. A missing header still commits
// so that stray items are gone, and the caller gets ErrOrderNotFound.
func (srv *orderService) DeleteOrder(ctx context.Context, id uint) error {
	var (
		headerMissing bool
		removedItems  int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		n, err := orderRepo.DeleteItems(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete order items")
		}
		removedItems = n

		err = orderRepo.Delete(ctx, id)
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			headerMissing = true

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete order", slog.Any("order_id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete order transaction")
	}

	if headerMissing {
		srv.log(ctx).Debug("Order header not found on delete", slog.Any("order_id", id), slog.Int64("removed_items", removedItems))

		return domainerrors.ErrOrderNotFound
	}

	srv.log(ctx).Info("Order deleted", slog.Any("order_id", id), slog.Int64("removed_items", removedItems))

	return nil
}
