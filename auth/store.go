// Package auth, storage layer for accounts. The service and middleware are
// written against the AccountStore contract so credential checks and token
// verification can be exercised without a database.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/pantry-go/apperror"
)

// AccountStore is the persistence contract for accounts.
// GetByEmail reports a missing account as pgx.ErrNoRows so the login path can
// collapse it with a wrong password into one indistinguishable failure.
type AccountStore interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	UsedItems(ctx context.Context, accountID uuid.UUID) int
}

// pgAccountStore is the pgx-backed AccountStore implementation.
type pgAccountStore struct {
	db *pgxpool.Pool
}

// NewAccountStore creates an AccountStore backed by the given connection pool.
func NewAccountStore(db *pgxpool.Pool) AccountStore {
	return &pgAccountStore{db: db}
}

// Create persists a new account. Constraint violations are returned raw so
// the service can map the duplicate-email case.
func (s *pgAccountStore) Create(ctx context.Context, account *Account) (*Account, error) {
	query := `INSERT INTO accounts (id, company, email, hashed_password, email_verified)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`
	err := s.db.QueryRow(ctx, query,
		account.ID, account.Company, account.Email, account.HashedPassword, account.EmailVerified,
	).Scan(&account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByEmail returns the account for a (lowercased) email address.
func (s *pgAccountStore) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	query := `SELECT id, company, email, hashed_password, email_verified, created_at
	          FROM accounts WHERE email = $1`
	err := s.db.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&account.ID,
		&account.Company,
		&account.Email,
		&account.HashedPassword,
		&account.EmailVerified,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByID retrieves an account by its identifier.
func (s *pgAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	var account Account
	query := `SELECT id, company, email, hashed_password, email_verified, created_at
	          FROM accounts WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Company,
		&account.Email,
		&account.HashedPassword,
		&account.EmailVerified,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("account not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get account by id", err)
	}
	return &account, nil
}

// UsedItems reads the items_used counter from usage statistics for the login
// response. Missing statistics are reported as zero, never as an error.
func (s *pgAccountStore) UsedItems(ctx context.Context, accountID uuid.UUID) int {
	var used int
	query := `SELECT items_used FROM usage_statistics WHERE account_id = $1`
	if err := s.db.QueryRow(ctx, query, accountID).Scan(&used); err != nil {
		return 0
	}
	return used
}
