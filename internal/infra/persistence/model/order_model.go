package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingAddressModel is embedded into orders with a shipping_ column prefix.
type ShippingAddressModel struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
	Country string `gorm:"type:varchar(100)"`
}

// PaymentModel is embedded into orders with a payment_ column prefix. The
// transaction ID is the gateway-side intent identifier once a terminal
// payment state is reached.
type PaymentModel struct {
	Method        string `gorm:"type:varchar(20);not null"`
	Status        string `gorm:"type:varchar(20);not null;default:pending"`
	TransactionID string `gorm:"type:varchar(255)"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID            `gorm:"type:uuid;index;not null"`
	Status      string               `gorm:"type:varchar(20);not null;default:pending"`
	TotalAmount decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Shipping    ShippingAddressModel `gorm:"embedded;embeddedPrefix:shipping_"`
	Payment     PaymentModel         `gorm:"embedded;embeddedPrefix:payment_"`
	Items       []OrderItemModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price
// captured at checkout, not a reference to the live catalog price.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
