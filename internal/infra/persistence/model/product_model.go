package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. The slug carries a unique
// constraint; concurrent inserts of the same title surface as a duplicate
// key error rather than a second row.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Slug        string          `gorm:"type:varchar(220);unique;not null"`
	Description string          `gorm:"type:text"`
	Images      []string        `gorm:"serializer:json;type:jsonb"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Category    string          `gorm:"type:varchar(100);index"`
	RatingAvg   float64         `gorm:"type:numeric(3,1);not null;default:0"`
	RatingCount int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
