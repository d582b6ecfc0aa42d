// Package auth handles authentication and authorization: account
// registration, login, token generation (JWT), and token validation.
// This file defines the Account entity as stored in the database.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered account in the system.
// The json:"-" tag on HashedPassword keeps the credential out of every API
// response; it is never stored or transmitted in clear.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	Email          *string   `json:"email"`
	HashedPassword string    `json:"-"`
	EmailVerified  bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
}
