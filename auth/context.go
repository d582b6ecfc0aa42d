// Package auth, context utilities. The authenticated account resolved by the
// middleware travels through the request context so handlers and downstream
// middleware (like the verified-account guard) can read it without another
// database round trip.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys, preventing collisions with
// keys defined in other packages.
type contextKey string

const (
	accountContextKey contextKey = "auth_account"
)

// NewContextWithAccount returns a child context carrying the authenticated account.
func NewContextWithAccount(ctx context.Context, account *Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

// AccountFromContext extracts the authenticated account from the context.
// The second return value reports whether an account was present.
func AccountFromContext(ctx context.Context) (*Account, bool) {
	account, ok := ctx.Value(accountContextKey).(*Account)
	return account, ok
}

// AccountIDFromContext extracts just the authenticated account's ID.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	account, ok := AccountFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return account.ID, true
}
