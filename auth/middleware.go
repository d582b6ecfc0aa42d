// Package auth, HTTP middleware. The bearer-token middleware verifies the
// credential on every protected request and re-resolves the account by id,
// failing closed: a missing header, a malformed token, an expired token, and
// a token for a deleted account are all reported identically.
package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/user/pantry-go/apperror"
)

// authFailedMessage is the single message used for every authentication
// failure so callers cannot distinguish why a credential was rejected.
const authFailedMessage = "could not validate credentials"

// Middleware returns the bearer-token authentication middleware. On success
// the resolved account is stored in the request context.
func (s *AuthService) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError(authFailedMessage, nil))
				return
			}

			// The Authorization header must be in the form "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError(authFailedMessage, nil))
				return
			}

			claims, err := s.ValidateToken(parts[1], tokenTypeAccess)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError(authFailedMessage, err))
				return
			}

			accountID, err := uuid.Parse(claims.AccountID)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError(authFailedMessage, err))
				return
			}

			account, err := s.GetAccountByID(r.Context(), accountID)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError(authFailedMessage, err))
				return
			}

			ctx := NewContextWithAccount(r.Context(), account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VerifiedMiddleware restricts a route group to verified accounts. It must
// run after Middleware, which places the account in the context.
func VerifiedMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError(authFailedMessage, nil))
			return
		}
		if !account.EmailVerified {
			WriteError(w, r, apperror.NewForbiddenError("account not verified", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
