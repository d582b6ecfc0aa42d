// Package auth, service layer. Contains the business logic for account
// registration, login, token issuance and verification.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/config"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
	pgUniqueViolation = "23505"
)

// AuthService provides authentication-related services. Dependencies are
// injected via the constructor; the service holds no global state.
type AuthService struct {
	store      AccountStore
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(store AccountStore, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		store:      store,
		authConfig: authConfig,
	}
}

// CustomClaims defines the JWT payload: the account identifier plus the
// token type ("access" or "refresh"), on top of the registered claims.
type CustomClaims struct {
	AccountID string `json:"account_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Register creates a new account with a bcrypt-hashed password.
// A duplicate email surfaces as a ConflictError, not a generic failure.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:             uuid.New(),
		Company:        req.Company,
		HashedPassword: string(hashedPassword),
	}
	if req.Email != nil && *req.Email != "" {
		email := strings.ToLower(*req.Email)
		account.Email = &email
	}
	if req.Verified != nil {
		account.EmailVerified = *req.Verified
	}

	created, err := s.store.Create(ctx, account)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, apperror.NewConflictError("email already registered", nil)
			}
		}
		return nil, apperror.NewDatabaseError("failed to create account", err)
	}
	return created, nil
}

// Login authenticates an account by email and password and returns tokens
// together with the account view. A wrong email and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("invalid credentials", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	tokens, err := s.generateTokens(account.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Account: LoginAccountResponse{
			AccountResponse: AccountResponse{
				ID:       account.ID,
				Company:  account.Company,
				Email:    account.Email,
				Verified: account.EmailVerified,
			},
			UsedItems: s.store.UsedItems(ctx, account.ID),
		},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

// RefreshToken issues a new access token from a valid refresh token.
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenResponse, error) {
	claims, err := s.ValidateToken(refreshTokenString, tokenTypeRefresh)
	if err != nil {
		return nil, apperror.NewAuthError("invalid refresh token", err)
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, apperror.NewAuthError("invalid refresh token", err)
	}

	// Fail closed: the account behind the token must still exist.
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return nil, apperror.NewAuthError("invalid refresh token", err)
	}

	newAccessToken, newAccessExpiresAt, err := s.generateSpecificToken(accountID, tokenTypeAccess, s.authConfig.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new access token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: refreshTokenString,
		TokenType:    "Bearer",
		ExpiresIn:    newAccessExpiresAt.Unix(),
	}, nil
}

// generateTokens creates both access and refresh tokens for an account.
func (s *AuthService) generateTokens(accountID uuid.UUID) (*TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.generateSpecificToken(accountID, tokenTypeAccess, s.authConfig.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.generateSpecificToken(accountID, tokenTypeRefresh, s.authConfig.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    accessExpiresAt.Unix(),
	}, nil
}

// generateSpecificToken creates a signed JWT with the given type and duration.
func (s *AuthService) generateSpecificToken(accountID uuid.UUID, tokenType string, duration time.Duration) (string, time.Time, error) {
	expirationTime := time.Now().Add(duration)
	claims := &CustomClaims{
		AccountID: accountID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "pantry",
			Subject:   accountID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateToken parses and validates a JWT string, checking the signature,
// expiry, and expected token type.
func (s *AuthService) ValidateToken(tokenString string, expectedTokenType string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.TokenType != expectedTokenType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedTokenType, claims.TokenType)
	}

	return claims, nil
}

// GetAccountByID retrieves an account by its identifier. Used by the
// middleware to re-resolve the account behind a verified token.
func (s *AuthService) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.store.GetByID(ctx, id)
}
