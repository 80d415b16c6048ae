package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager         repository.TransactionManager
	orderRepo         repository.OrderRepository
	strictTransitions bool
	logger            *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	strict := false
	if params.Config != nil && params.Config.Orders != nil {
		strict = params.Config.Orders.StrictStatusTransitions
	}

	return &orderService{
		txManager:         params.TxManager,
		orderRepo:         params.OrderRepo,
		strictTransitions: strict,
		logger:            params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order. Product rows are locked for the duration of
// the transaction, so two concurrent checkouts of the same product serialize
// and the second one sees the decremented stock. Prices are captured from the
// catalog at this moment; later catalog edits never reprice an order.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("userID", userID), slog.Int("items", len(input.Items)))

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}

	var createdOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		products, err := productRepo.FindByIDsForUpdate(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to lock products for checkout")
		}

		byID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		order := &entity.Order{
			UserID:          userID,
			ShippingAddress: input.ShippingAddress,
			Status:          entity.OrderStatusPending,
			Payment: entity.Payment{
				Method: input.PaymentMethod,
				Status: entity.PaymentStatusPending,
			},
		}

		total := decimal.Zero
		for _, item := range input.Items {
			product, ok := byID[item.ProductID]
			if !ok {
				return errors.Wrap(
					domainerrors.ErrProductNotFound.WithDetails(fmt.Sprintf("product %s not found", item.ProductID)),
					"checkout references missing product",
				)
			}
			if product.Stock < item.Quantity {
				return errors.Wrap(
					domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("insufficient stock for %s", product.Title)),
					"checkout exceeds available stock",
				)
			}

			order.Items = append(order.Items, entity.OrderItem{
				ProductID: product.ID,
				Product:   product,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		order.TotalAmount = total

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range order.Items {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrap(
						domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("insufficient stock for product %s", item.ProductID)),
						"stock decrement lost the race",
					)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order created", slog.Any("orderID", createdOrder.ID), slog.String("total", createdOrder.TotalAmount.String()))

	return createdOrder, nil
}

// GetOrder returns an order, restricting customers to their own orders.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID, isAdmin bool) (*entity.Order, error) {
	var (
		order *entity.Order
		err   error
	)

	if isAdmin {
		order, err = srv.orderRepo.FindByID(ctx, orderID)
	} else {
		order, err = srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			// Another user's order is reported as missing, not forbidden.
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListUserOrders returns the calling user's orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListAllOrders returns every order for the admin view.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies an admin's fulfillment status change. With strict
// transitions enabled, only forward moves through the fulfillment flow are
// accepted; otherwise any valid status can be set directly.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order status update failed")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if srv.strictTransitions && !entity.CanTransitionOrderStatus(order.Status, input.Status) {
			return errors.Wrap(
				domainerrors.ErrOrderStatusInvalid.WithDetails(
					fmt.Sprintf("cannot move order from %s to %s", order.Status, input.Status),
				),
				"order status transition rejected",
			)
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = input.Status
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(input.Status)))

	return updated, nil
}

// UpdatePaymentStatus applies an admin's payment status change. It goes
// through the same transition rules as the confirmation and webhook writers,
// so replaying a target status is a no-op and moves out of a terminal state
// are rejected.
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdatePaymentStatusInput) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "payment status update failed")
			}

			return errors.Wrap(err, "failed to find order")
		}

		changed, err := order.Payment.ApplyTransition(input.Status, input.TransactionID)
		if err != nil {
			return errors.Wrap(
				domainerrors.ErrPaymentStatusInvalid.WithDetails(err.Error()),
				"payment status transition rejected",
			)
		}

		if changed {
			if err := orderRepo.UpdatePayment(ctx, orderID, order.Payment); err != nil {
				return errors.Wrap(err, "failed to persist payment status")
			}
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute payment status transaction")
	}

	srv.log(ctx).Info("Payment status updated", slog.Any("orderID", orderID), slog.String("status", string(input.Status)))

	return updated, nil
}
