package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// minorUnitFactor converts decimal major-unit amounts to gateway minor units.
var minorUnitFactor = decimal.NewFromInt(100)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	currency  string
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := "usd"
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		currency:  currency,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadOrderFor returns the order, enforcing ownership for non-admin callers.
func (srv *paymentService) loadOrderFor(ctx context.Context, userID, orderID uuid.UUID, isAdmin bool) (*entity.Order, error) {
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
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// CreateIntent registers a pending charge with the gateway. The order ID is
// attached as gateway metadata so webhooks can find their way back.
func (srv *paymentService) CreateIntent(ctx context.Context, userID uuid.UUID, isAdmin bool, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	order, err := srv.loadOrderFor(ctx, userID, input.OrderID, isAdmin)
	if err != nil {
		return nil, err
	}

	if order.Payment.Status != entity.PaymentStatusPending {
		return nil, errors.Wrap(domainerrors.ErrPaymentNotPending, "intent creation rejected")
	}
	if order.Payment.Method != entity.PaymentMethodStripe {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedPaymentMethod, "intent creation rejected")
	}

	amountMinor := order.TotalAmount.Mul(minorUnitFactor).IntPart()

	intent, err := srv.gateway.CreateIntent(ctx, amountMinor, srv.currency, order.ID.String())
	if err != nil {
		srv.log(ctx).Error("Gateway intent creation failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, domainerrors.NewPaymentGatewayError(err, "failed to create payment intent")
	}

	srv.log(ctx).Info("Payment intent created", slog.Any("orderID", order.ID), slog.String("intentID", intent.ID))

	return &usecase.CreateIntentOutput{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// ConfirmPayment checks the gateway-side status of an intent. Only a
// succeeded intent marks the order paid; anything else reports Success=false
// without an error, since the charge may still complete via webhook.
func (srv *paymentService) ConfirmPayment(ctx context.Context, userID uuid.UUID, isAdmin bool, input *usecase.ConfirmPaymentInput) (*usecase.ConfirmPaymentOutput, error) {
	order, err := srv.loadOrderFor(ctx, userID, input.OrderID, isAdmin)
	if err != nil {
		return nil, err
	}

	intent, err := srv.gateway.GetIntent(ctx, input.PaymentIntentID)
	if err != nil {
		srv.log(ctx).Error("Gateway intent lookup failed", slog.String("intentID", input.PaymentIntentID), slog.Any("error", err))

		return nil, domainerrors.NewPaymentGatewayError(err, "failed to retrieve payment intent")
	}

	if intent.OrderID != "" && intent.OrderID != order.ID.String() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("payment intent does not belong to this order"),
			"intent order mismatch",
		)
	}

	if intent.Status != service.IntentStatusSucceeded {
		return &usecase.ConfirmPaymentOutput{Success: false, Status: intent.Status}, nil
	}

	if err := srv.applyPaymentTransition(ctx, order.ID, entity.PaymentStatusPaid, intent.ID, false); err != nil {
		return nil, err
	}

	return &usecase.ConfirmPaymentOutput{Success: true, Status: intent.Status}, nil
}

// Refund refunds a paid order through the gateway and marks it refunded.
func (srv *paymentService) Refund(ctx context.Context, input *usecase.RefundInput) (*usecase.RefundOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "refund failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.Payment.Status != entity.PaymentStatusPaid {
		return nil, errors.Wrap(domainerrors.ErrPaymentStatusInvalid.WithDetails("only paid orders can be refunded"), "refund rejected")
	}
	if order.Payment.TransactionID == "" {
		return nil, errors.Wrap(domainerrors.ErrPaymentStatusInvalid.WithDetails("order has no gateway transaction"), "refund rejected")
	}

	var amountMinor *int64
	if input.Amount != nil {
		minor := input.Amount.Mul(minorUnitFactor).IntPart()
		amountMinor = &minor
	}

	refund, err := srv.gateway.CreateRefund(ctx, order.Payment.TransactionID, amountMinor)
	if err != nil {
		srv.log(ctx).Error("Gateway refund failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, domainerrors.NewPaymentGatewayError(err, "failed to create refund")
	}

	if err := srv.applyPaymentTransition(ctx, order.ID, entity.PaymentStatusRefunded, order.Payment.TransactionID, false); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order refunded", slog.Any("orderID", order.ID), slog.String("refundID", refund.ID))

	return &usecase.RefundOutput{RefundID: refund.ID}, nil
}

// HandlePaymentEvent applies a verified webhook event to its order. Events
// for unknown orders and transitions the state machine rejects are logged and
// dropped, never surfaced as errors, so the gateway stops retrying.
func (srv *paymentService) HandlePaymentEvent(ctx context.Context, event *service.PaymentEvent) error {
	var target entity.PaymentStatus
	switch event.Type {
	case service.EventPaymentSucceeded:
		target = entity.PaymentStatusPaid
	case service.EventPaymentFailed:
		target = entity.PaymentStatusFailed
	default:
		srv.log(ctx).Debug("Ignoring gateway event", slog.String("type", event.Type))

		return nil
	}

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		srv.log(ctx).Warn("Webhook event carries no usable order ID", slog.String("orderID", event.OrderID), slog.String("intentID", event.IntentID))

		return nil
	}

	return srv.applyPaymentTransition(ctx, orderID, target, event.IntentID, true)
}

// applyPaymentTransition moves an order's payment to the target status inside
// a transaction. With dropConflicts set (the webhook path), a missing order or
// a rejected transition is logged and swallowed; the confirmation path instead
// reports them to the caller.
func (srv *paymentService) applyPaymentTransition(ctx context.Context, orderID uuid.UUID, target entity.PaymentStatus, transactionID string, dropConflicts bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) && dropConflicts {
				srv.log(ctx).Warn("Dropping payment event for unknown order", slog.Any("orderID", orderID))

				return nil
			}
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "payment transition failed")
			}

			return errors.Wrap(err, "failed to find order")
		}

		changed, err := order.Payment.ApplyTransition(target, transactionID)
		if err != nil {
			if dropConflicts {
				srv.log(ctx).Warn("Dropping conflicting payment event",
					slog.Any("orderID", orderID),
					slog.String("current", string(order.Payment.Status)),
					slog.String("target", string(target)))

				return nil
			}

			return errors.Wrap(domainerrors.ErrPaymentStatusInvalid.WithDetails(err.Error()), "payment transition rejected")
		}
		if !changed {
			return nil
		}

		if err := orderRepo.UpdatePayment(ctx, orderID, order.Payment); err != nil {
			return errors.Wrap(err, "failed to persist payment status")
		}

		srv.log(ctx).Info("Payment status updated", slog.Any("orderID", orderID), slog.String("status", string(target)))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute payment transition transaction")
	}

	return nil
}

// ListPaymentMethods returns the methods offered at checkout. Only the card
// gateway is live; the rest are placeholders the storefront can display.
func (srv *paymentService) ListPaymentMethods(_ context.Context) []usecase.PaymentMethodInfo {
	return []usecase.PaymentMethodInfo{
		{ID: string(entity.PaymentMethodStripe), Name: "Credit / debit card", Enabled: true},
		{ID: string(entity.PaymentMethodIyzico), Name: "iyzico", Enabled: false},
		{ID: string(entity.PaymentMethodCash), Name: "Cash on delivery", Enabled: false},
	}
}
