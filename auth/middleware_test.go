package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextRecorder records whether the wrapped handler was reached.
type nextRecorder struct {
	called bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_RejectsMissingHeader(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	next := &nextRecorder{}
	handler := s.Middleware()(next.handler())

	req := httptest.NewRequest(http.MethodGet, "/pantry/items", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Contains(t, rec.Body.String(), "could not validate credentials")
}

func TestMiddleware_RejectsMalformedHeader(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	next := &nextRecorder{}
	handler := s.Middleware()(next.handler())

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/pantry/items", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
	assert.False(t, next.called)
}

func TestMiddleware_RejectsInvalidToken(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	next := &nextRecorder{}
	handler := s.Middleware()(next.handler())

	req := httptest.NewRequest(http.MethodGet, "/pantry/items", nil)
	req.Header.Set("Authorization", "Bearer not.a.valid.jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	// The rejection message must not reveal why the token failed.
	assert.Contains(t, rec.Body.String(), "could not validate credentials")
}

func TestMiddleware_ValidTokenResolvesAccount(t *testing.T) {
	t.Parallel()

	store, account := storeWithAccount(t, "user@example.com", "pw")
	s := NewAuthService(store, testAuthService().authConfig)

	token, _, err := s.generateSpecificToken(account.ID, tokenTypeAccess, time.Hour)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	var seen *Account
	handler := s.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = AccountFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/pantry/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, account.ID, seen.ID)
}

func TestMiddleware_RejectsDeletedAccount(t *testing.T) {
	t.Parallel()

	s := NewAuthService(newFakeAccountStore(), testAuthService().authConfig)
	token, _, err := s.generateSpecificToken(uuid.New(), tokenTypeAccess, time.Hour)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	next := &nextRecorder{}
	handler := s.Middleware()(next.handler())

	req := httptest.NewRequest(http.MethodGet, "/pantry/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// The token is valid but the account behind it is gone; fail closed with
	// the same message as every other rejection.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Contains(t, rec.Body.String(), "could not validate credentials")
}

func TestVerifiedMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("verified account passes", func(t *testing.T) {
		t.Parallel()
		next := &nextRecorder{}
		handler := VerifiedMiddleware(next.handler())

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req = req.WithContext(NewContextWithAccount(req.Context(), &Account{EmailVerified: true}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, next.called)
	})

	t.Run("unverified account forbidden", func(t *testing.T) {
		t.Parallel()
		next := &nextRecorder{}
		handler := VerifiedMiddleware(next.handler())

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req = req.WithContext(NewContextWithAccount(req.Context(), &Account{EmailVerified: false}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, next.called)
		assert.Contains(t, rec.Body.String(), "account not verified")
	})

	t.Run("missing account unauthorized", func(t *testing.T) {
		t.Parallel()
		next := &nextRecorder{}
		handler := VerifiedMiddleware(next.handler())

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})
}

func TestAccountContextHelpers(t *testing.T) {
	t.Parallel()

	account := &Account{EmailVerified: true}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := AccountFromContext(req.Context()); ok {
		t.Fatal("expected no account in a fresh context")
	}

	ctx := NewContextWithAccount(req.Context(), account)
	got, ok := AccountFromContext(ctx)
	if !ok || got != account {
		t.Fatal("expected the stored account back from the context")
	}
}
