package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account referenced by orders and reviews. The core workflow
// treats it as an external collaborator's model: it only ever reads the
// identity and role resolved by the access control gate.
type User struct {
	ID           uuid.UUID         `json:"id"`
	Email        string            `json:"email"` // Login identifier, unique.
	Name         string            `json:"name"`
	PasswordHash string            `json:"-"` // bcrypt hash; never serialized.
	Role         Role              `json:"role"`
	Addresses    []ShippingAddress `json:"addresses,omitempty"` // Saved shipping addresses.
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
