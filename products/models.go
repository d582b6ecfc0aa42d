// Package products implements the known-product cache and the barcode
// resolver: cache-first resolution with fallback to the public Open Food
// Facts database. This file defines the entities and payloads of the module.
package products

import (
	"time"

	"github.com/google/uuid"
)

// KnownProduct is a locally cached product record keyed by barcode.
// It is globally readable by all accounts; created_by only records which
// account first contributed the record.
type KnownProduct struct {
	ID        uuid.UUID `json:"id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Brand     *string   `json:"brand,omitempty"`
	Category  *string   `json:"category,omitempty"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductInfo is the resolver's result shape. The resolver always answers
// with a populated ProductInfo; failures are carried in the Error field
// instead of being raised to the caller.
type ProductInfo struct {
	Name           string  `json:"name" example:"Nutella"`
	Brand          *string `json:"brand,omitempty" example:"Ferrero"`
	Category       *string `json:"category,omitempty" example:"Spreads"`
	Error          *string `json:"error,omitempty"`
	IsKnownProduct bool    `json:"is_known_product"`
}

// unknownProductName is the placeholder used whenever a product name cannot
// be determined.
const unknownProductName = "Unknown Product"

// CreateKnownProductRequest is the payload for explicitly adding a product
// to the cache.
type CreateKnownProductRequest struct {
	Barcode  string  `json:"barcode" example:"3017620422003"`
	Name     string  `json:"name" example:"Nutella"`
	Brand    *string `json:"brand,omitempty" example:"Ferrero"`
	Category *string `json:"category,omitempty" example:"Spreads"`
}
