// Package products, service layer. The resolver answers "what product does
// this barcode represent" with a cache-first, external-fallback policy.
package products

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/user/pantry-go/apperror"
)

// Service orchestrates the known-product cache and the external lookup.
type Service struct {
	store  Store
	lookup Lookup
}

// NewService creates a new Service.
func NewService(store Store, lookup Lookup) *Service {
	return &Service{store: store, lookup: lookup}
}

// Resolve processes a barcode and returns product information. It never
// returns an error: every failure path degrades to a populated ProductInfo
// whose Error field explains what went wrong.
//
// Resolution alone never mutates the cache; the only write path into the
// cache is EnsureKnown, invoked from explicit pantry item creation.
func (s *Service) Resolve(ctx context.Context, barcode string) ProductInfo {
	// Cache first. A hit answers immediately with no external call.
	known, err := s.store.GetByBarcode(ctx, barcode)
	if err == nil {
		return ProductInfo{
			Name:           known.Name,
			Brand:          known.Brand,
			Category:       known.Category,
			IsKnownProduct: true,
		}
	}
	if !apperror.IsNotFound(err) {
		// A cache read failure degrades to the external path rather than
		// failing the request.
		log.Printf("known product cache read failed for barcode %s: %v", barcode, err)
	}

	info, err := s.lookup.Fetch(ctx, barcode)
	if err != nil {
		msg := "Error processing barcode"
		if apperror.IsNotFound(err) {
			msg = "Product not found in database"
		}
		return ProductInfo{
			Name:  unknownProductName,
			Error: &msg,
		}
	}

	return *info
}

// EnsureKnown persists a product discovered during pantry item creation into
// the cache, attributed to the acting account, unless a record with the same
// barcode already exists. The insert-if-absent is a single atomic statement;
// losing a race to a concurrent writer is the expected outcome, not an error.
// The write goes through db so callers can scope it to their transaction.
func (s *Service) EnsureKnown(ctx context.Context, db DBTX, name, barcode string, createdBy uuid.UUID) error {
	if name == "" {
		name = unknownProductName
	}
	return s.store.Ensure(ctx, db, &KnownProduct{
		ID:        uuid.New(),
		Barcode:   barcode,
		Name:      name,
		CreatedBy: createdBy,
	})
}

// CreateKnownProduct explicitly adds a product to the cache. A duplicate
// barcode surfaces as a ConflictError.
func (s *Service) CreateKnownProduct(ctx context.Context, req CreateKnownProductRequest, createdBy uuid.UUID) (*KnownProduct, error) {
	return s.store.Insert(ctx, &KnownProduct{
		ID:        uuid.New(),
		Barcode:   req.Barcode,
		Name:      req.Name,
		Brand:     req.Brand,
		Category:  req.Category,
		CreatedBy: createdBy,
	})
}

// GetKnownProduct returns a cached product by barcode.
func (s *Service) GetKnownProduct(ctx context.Context, barcode string) (*KnownProduct, error) {
	return s.store.GetByBarcode(ctx, barcode)
}
