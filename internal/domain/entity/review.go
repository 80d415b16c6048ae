package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a product. At most one review exists per
// (user, product) pair; every review write triggers a recomputation of the
// parent product's rating aggregate.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	ProductID uuid.UUID `json:"product"`
	Rating    int       `json:"rating"`             // 1..5 integer.
	Comment   string    `json:"comment"`            // At most 500 characters.
	UserName  string    `json:"userName,omitempty"` // Reviewer display name, when loaded.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
