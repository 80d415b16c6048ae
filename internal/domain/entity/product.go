// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item.
//
// Stock is only ever mutated by the order workflow (decrement on order
// creation); RatingAvg and RatingCount are only ever mutated by the rating
// aggregator. Catalog writes never touch either field.
type Product struct {
	ID          uuid.UUID       `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	Title       string          `json:"title"`       // Display title; the slug is derived from it.
	Slug        string          `json:"slug"`        // URL-safe unique slug, regenerated whenever the title changes.
	Description string          `json:"description"` // Free-text description.
	Images      []string        `json:"images"`      // Image references (URLs or storage keys).
	Price       decimal.Decimal `json:"price"`       // Current unit price, non-negative.
	Stock       int             `json:"stock"`       // Units available, never below zero.
	Category    string          `json:"category"`    // Category label used for filtering.
	RatingAvg   float64         `json:"ratingAvg"`   // Average review rating, 0..5, one decimal.
	RatingCount int             `json:"ratingCount"` // Number of reviews behind RatingAvg.
	CreatedAt   time.Time       `json:"createdAt"`   // Timestamp of creation.
	UpdatedAt   time.Time       `json:"updatedAt"`   // Timestamp of the last modification.
}
