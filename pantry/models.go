// Package pantry implements user-owned pantry item records: creation with
// best-effort known-product sync, ownership-scoped reads, and deletion.
// This file defines the entity and the request/response payloads.
package pantry

import (
	"time"

	"github.com/google/uuid"
)

// PantryItem is an inventory record owned by exactly one account and
// optionally linked to a barcode. Expiry and scan-time markers are carried
// as date-like strings, matching what scanning clients submit.
type PantryItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Barcode        *string   `json:"barcode,omitempty"`
	ExpiresAt      string    `json:"expires_at"`
	LatestScanTime string    `json:"latest_scan_time"`
	Quantity       int       `json:"quantity"`
	AccountID      uuid.UUID `json:"account_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreatePantryItemRequest is the payload for creating a pantry item.
type CreatePantryItemRequest struct {
	Name           string  `json:"name" example:"Oat milk"`
	Barcode        *string `json:"barcode,omitempty" example:"3017620422003"`
	ExpiresAt      string  `json:"expires_at" example:"2026-10-01"`
	LatestScanTime string  `json:"latest_scan_time" example:"2026-09-01T12:00:00Z"`
	Quantity       int     `json:"quantity" example:"2"`
}

// PantryListResponse is the read-all response shape: the owned items plus a
// count. An account with zero items gets an empty list, not null.
type PantryListResponse struct {
	Data  []PantryItem `json:"data"`
	Total int          `json:"total"`
}
