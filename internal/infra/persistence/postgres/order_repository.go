package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order with its items by ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUser retrieves an order only when it belongs to the given user.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		First(&orderM, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for user")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders placed by a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainSlice(orderMs), nil
}

// FindAll retrieves every order in the system, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(orderMs), nil
}

// Create persists a new order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		order.Items[i].ID = orderM.Items[i].ID
	}

	return nil
}

// UpdateStatus overwrites the order's fulfillment status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdatePayment overwrites the order's embedded payment record.
func (repo *orderRepository) UpdatePayment(ctx context.Context, id uuid.UUID, payment entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_method":         string(payment.Method),
			"payment_status":         string(payment.Status),
			"payment_transaction_id": payment.TransactionID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		items = append(items, entity.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   toProductDomain(item.Product),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
		ShippingAddress: entity.ShippingAddress{
			Street:  data.Shipping.Street,
			City:    data.Shipping.City,
			State:   data.Shipping.State,
			ZipCode: data.Shipping.ZipCode,
			Country: data.Shipping.Country,
		},
		Payment: entity.Payment{
			Method:        entity.PaymentMethod(data.Payment.Method),
			Status:        entity.PaymentStatus(data.Payment.Status),
			TransactionID: data.Payment.TransactionID,
		},
		Status:      entity.OrderStatus(data.Status),
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOrderDomainSlice(data []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for i := range data {
		orders = append(orders, toOrderDomain(&data[i]))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		ID:     data.ID,
		UserID: data.UserID,
		Status: string(data.Status),
		Shipping: model.ShippingAddressModel{
			Street:  data.ShippingAddress.Street,
			City:    data.ShippingAddress.City,
			State:   data.ShippingAddress.State,
			ZipCode: data.ShippingAddress.ZipCode,
			Country: data.ShippingAddress.Country,
		},
		Payment: model.PaymentModel{
			Method:        string(data.Payment.Method),
			Status:        string(data.Payment.Status),
			TransactionID: data.Payment.TransactionID,
		},
		TotalAmount: data.TotalAmount,
		Items:       items,
	}
}
