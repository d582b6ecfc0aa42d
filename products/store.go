// Package products, storage layer for the known-product cache.
package products

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/pantry-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// DBTX is the minimal query surface the store needs for writes that must
// participate in a caller-owned transaction. Both *pgxpool.Pool and pgx.Tx
// satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Store is the known-product cache contract: barcode lookup with a
// well-defined not-found signal, insertion with a distinct duplicate-barcode
// error, and an atomic insert-if-absent usable inside a transaction.
type Store interface {
	GetByBarcode(ctx context.Context, barcode string) (*KnownProduct, error)
	Insert(ctx context.Context, product *KnownProduct) (*KnownProduct, error)
	Ensure(ctx context.Context, db DBTX, product *KnownProduct) error
}

// pgStore is the pgx-backed Store implementation.
type pgStore struct {
	db *pgxpool.Pool
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

// GetByBarcode returns the cached product for a barcode, or a NotFoundError.
func (s *pgStore) GetByBarcode(ctx context.Context, barcode string) (*KnownProduct, error) {
	var p KnownProduct
	query := `SELECT id, barcode, name, brand, category, created_by, created_at, updated_at
	          FROM known_products WHERE barcode = $1`
	err := s.db.QueryRow(ctx, query, barcode).Scan(
		&p.ID,
		&p.Barcode,
		&p.Name,
		&p.Brand,
		&p.Category,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("known product not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get known product", err)
	}
	return &p, nil
}

// Insert persists a new known product. A duplicate barcode surfaces as a
// ConflictError so callers can distinguish it from a generic failure.
func (s *pgStore) Insert(ctx context.Context, product *KnownProduct) (*KnownProduct, error) {
	query := `INSERT INTO known_products (id, barcode, name, brand, category, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`
	err := s.db.QueryRow(ctx, query,
		product.ID, product.Barcode, product.Name, product.Brand, product.Category, product.CreatedBy,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "barcode") {
			return nil, apperror.NewConflictError("product with this barcode already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create known product", err)
	}
	return product, nil
}

// Ensure inserts the product if no record with its barcode exists yet, as a
// single atomic statement. A concurrent writer winning the race is a no-op
// here, not an error. The write goes through db so it can run inside a
// caller-owned transaction.
func (s *pgStore) Ensure(ctx context.Context, db DBTX, product *KnownProduct) error {
	query := `INSERT INTO known_products (id, barcode, name, brand, category, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (barcode) WHERE barcode IS NOT NULL DO NOTHING`
	_, err := db.Exec(ctx, query,
		product.ID, product.Barcode, product.Name, product.Brand, product.Category, product.CreatedBy,
	)
	if err != nil {
		return apperror.NewDatabaseError("failed to ensure known product", err)
	}
	return nil
}
