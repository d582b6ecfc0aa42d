// Package pantry, service layer. Contains the business logic for the pantry
// item lifecycle.
package pantry

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/products"
)

// DB is the minimal query surface the pantry service needs: transactions for
// creation, single-row reads for the ownership-matched lookups, and row sets
// for listing. Both *pgxpool.Pool and pgx.Tx satisfy it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// KnownProductSyncer is the slice of the products service the pantry module
// depends on: the atomic insert-if-absent used during item creation. The
// write runs on the provided DBTX so it can be scoped to this module's
// transaction.
type KnownProductSyncer interface {
	EnsureKnown(ctx context.Context, db products.DBTX, name, barcode string, createdBy uuid.UUID) error
}

// PantryService defines the pantry item operations.
type PantryService interface {
	CreateItem(ctx context.Context, req CreatePantryItemRequest, accountID uuid.UUID) (*PantryItem, error)
	GetItem(ctx context.Context, itemID, accountID uuid.UUID) (*PantryItem, error)
	ListItems(ctx context.Context, accountID uuid.UUID) (*PantryListResponse, error)
	DeleteItem(ctx context.Context, itemID, accountID uuid.UUID) (*PantryItem, error)
}

// pantryServiceImpl is the pgx-backed implementation of PantryService.
type pantryServiceImpl struct {
	db     DB
	syncer KnownProductSyncer
}

// NewPantryService creates a new PantryService.
func NewPantryService(db DB, syncer KnownProductSyncer) PantryService {
	return &pantryServiceImpl{db: db, syncer: syncer}
}

// CreateItem persists a new pantry item bound to the acting account.
//
// Everything runs in one transaction: when the item carries a barcode not
// yet in the known-product cache, a product record built from the item's
// name (brand and category left empty) is inserted first, inside a
// savepoint. A failing cache write is rolled back to the savepoint and
// logged, never surfaced; a failing item insert rolls the whole transaction
// back, cache write included, so no partial writes are observable.
func (s *pantryServiceImpl) CreateItem(ctx context.Context, req CreatePantryItemRequest, accountID uuid.UUID) (item *PantryItem, err error) {
	if req.Name == "" {
		return nil, apperror.NewValidationError("name is required", nil)
	}
	if req.Quantity < 0 {
		return nil, apperror.NewValidationError("quantity must not be negative", nil)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to begin transaction", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = apperror.NewDatabaseError("failed to create pantry item", commitErr)
			item = nil
		}
	}()

	if req.Barcode != nil && *req.Barcode != "" {
		s.syncKnownProduct(ctx, tx, req, accountID)
	}

	item = &PantryItem{
		ID:             uuid.New(),
		Name:           req.Name,
		Barcode:        req.Barcode,
		ExpiresAt:      req.ExpiresAt,
		LatestScanTime: req.LatestScanTime,
		Quantity:       req.Quantity,
		AccountID:      accountID,
	}
	query := `INSERT INTO pantry_items (id, name, barcode, expires_at, latest_scan_time, quantity, account_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING created_at`
	err = tx.QueryRow(ctx, query,
		item.ID, item.Name, item.Barcode, item.ExpiresAt, item.LatestScanTime, item.Quantity, item.AccountID,
	).Scan(&item.CreatedAt)
	if err != nil {
		err = apperror.NewDatabaseError("failed to create pantry item", err)
		return nil, err
	}

	return item, nil
}

// syncKnownProduct runs the best-effort cache write inside a savepoint on
// the caller's transaction. pgx nests transactions via savepoints, so a
// rollback here leaves the outer transaction usable.
func (s *pantryServiceImpl) syncKnownProduct(ctx context.Context, tx pgx.Tx, req CreatePantryItemRequest, accountID uuid.UUID) {
	sp, err := tx.Begin(ctx)
	if err != nil {
		log.Printf("known product sync skipped, savepoint failed: %v", err)
		return
	}
	if err := s.syncer.EnsureKnown(ctx, sp, req.Name, *req.Barcode, accountID); err != nil {
		_ = sp.Rollback(ctx)
		log.Printf("known product sync failed for barcode %s: %v", *req.Barcode, err)
		return
	}
	if err := sp.Commit(ctx); err != nil {
		log.Printf("known product sync commit failed for barcode %s: %v", *req.Barcode, err)
	}
}

// GetItem returns the item only if both its identifier and owning account
// match. A wrong owner and a missing item are reported identically.
func (s *pantryServiceImpl) GetItem(ctx context.Context, itemID, accountID uuid.UUID) (*PantryItem, error) {
	var item PantryItem
	query := `SELECT id, name, barcode, expires_at, latest_scan_time, quantity, account_id, created_at
	          FROM pantry_items WHERE id = $1 AND account_id = $2`
	err := s.db.QueryRow(ctx, query, itemID, accountID).Scan(
		&item.ID,
		&item.Name,
		&item.Barcode,
		&item.ExpiresAt,
		&item.LatestScanTime,
		&item.Quantity,
		&item.AccountID,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("pantry item not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get pantry item", err)
	}
	return &item, nil
}

// ListItems returns every item owned by the acting account, plus a count.
func (s *pantryServiceImpl) ListItems(ctx context.Context, accountID uuid.UUID) (*PantryListResponse, error) {
	query := `SELECT id, name, barcode, expires_at, latest_scan_time, quantity, account_id, created_at
	          FROM pantry_items WHERE account_id = $1 ORDER BY created_at`
	rows, err := s.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list pantry items", err)
	}
	defer rows.Close()

	items := []PantryItem{}
	for rows.Next() {
		var item PantryItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Barcode,
			&item.ExpiresAt,
			&item.LatestScanTime,
			&item.Quantity,
			&item.AccountID,
			&item.CreatedAt,
		); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan pantry item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed reading pantry items for account %s", accountID), err)
	}

	return &PantryListResponse{Data: items, Total: len(items)}, nil
}

// DeleteItem removes an item with the same ownership-matched lookup as
// GetItem and returns the pre-deletion snapshot.
func (s *pantryServiceImpl) DeleteItem(ctx context.Context, itemID, accountID uuid.UUID) (*PantryItem, error) {
	var item PantryItem
	query := `DELETE FROM pantry_items WHERE id = $1 AND account_id = $2
	          RETURNING id, name, barcode, expires_at, latest_scan_time, quantity, account_id, created_at`
	err := s.db.QueryRow(ctx, query, itemID, accountID).Scan(
		&item.ID,
		&item.Name,
		&item.Barcode,
		&item.ExpiresAt,
		&item.LatestScanTime,
		&item.Quantity,
		&item.AccountID,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("pantry item not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to delete pantry item", err)
	}
	return &item, nil
}
