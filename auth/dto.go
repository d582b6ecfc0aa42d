// Package auth provides authentication and authorization functionality.
// This file defines the request and response payloads for the auth endpoints.
package auth

import "github.com/google/uuid"

// RegisterRequest represents the account registration payload.
// Email is optional; some deployments register company accounts without one.
type RegisterRequest struct {
	Company  string  `json:"company" example:"Acme Foods"`
	Email    *string `json:"email,omitempty" example:"user@example.com"`
	Verified *bool   `json:"verified,omitempty" example:"false"`
	Password string  `json:"password" example:"strongpassword123"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID       uuid.UUID `json:"id"`
	Company  string    `json:"company" example:"Acme Foods"`
	Email    *string   `json:"email,omitempty" example:"user@example.com"`
	Verified bool      `json:"verified" example:"true"`
}

// LoginAccountResponse is the account view embedded in a login response.
// It additionally carries the items_used counter from usage statistics.
type LoginAccountResponse struct {
	AccountResponse
	UsedItems int `json:"used_items" example:"3"`
}

// LoginResponse is returned to the client upon successful login.
type LoginResponse struct {
	Account      LoginAccountResponse `json:"user"`
	AccessToken  string               `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string               `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType    string               `json:"token_type" example:"Bearer"`
	ExpiresIn    int64                `json:"expires_in" example:"3600"`
}

// TokenResponse is returned by the token refresh endpoint.
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int64  `json:"expires_in" example:"3600"`
}

// RefreshTokenRequest represents the token refresh payload.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
