package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index keeps
// the one-review-per-user-per-product rule enforced at the database even when
// two requests race past the application-level check.
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	User      *UserModel `gorm:"foreignKey:UserID"`
	Rating    int        `gorm:"not null"`
	Comment   string     `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
