package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/config"
)

func testAuthService() *AuthService {
	// Token generation and validation never touch the database, so a nil
	// pool is fine here.
	return NewAuthService(nil, config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	accountID := uuid.New()

	token, _, err := s.generateSpecificToken(accountID, tokenTypeAccess, time.Hour)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	claims, err := s.ValidateToken(token, tokenTypeAccess)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.AccountID != accountID.String() {
		t.Fatalf("account id mismatch: got %q want %q", claims.AccountID, accountID)
	}
	if claims.TokenType != tokenTypeAccess {
		t.Fatalf("token type mismatch: got %q", claims.TokenType)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	token, _, err := s.generateSpecificToken(uuid.New(), tokenTypeAccess, -1*time.Minute)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	if _, err := s.ValidateToken(token, tokenTypeAccess); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateToken_WrongType(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	token, _, err := s.generateSpecificToken(uuid.New(), tokenTypeRefresh, time.Hour)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	// A refresh token must not pass as an access token.
	if _, err := s.ValidateToken(token, tokenTypeAccess); err == nil {
		t.Fatal("expected error for wrong token type, got nil")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	token, _, err := s.generateSpecificToken(uuid.New(), tokenTypeAccess, time.Hour)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	other := NewAuthService(nil, config.AuthConfig{JWTSecret: "different-secret"})
	if _, err := other.ValidateToken(token, tokenTypeAccess); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	if _, err := s.ValidateToken("not.a.jwt", tokenTypeAccess); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestGenerateTokens_BothTypes(t *testing.T) {
	t.Parallel()

	s := testAuthService()
	accountID := uuid.New()

	resp, err := s.generateTokens(accountID)
	if err != nil {
		t.Fatalf("generateTokens error: %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Fatalf("token type = %q, want Bearer", resp.TokenType)
	}

	if _, err := s.ValidateToken(resp.AccessToken, tokenTypeAccess); err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if _, err := s.ValidateToken(resp.RefreshToken, tokenTypeRefresh); err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
}

// fakeAccountStore is an in-memory AccountStore. GetByEmail reports a missing
// account as pgx.ErrNoRows, matching the pgx-backed implementation.
type fakeAccountStore struct {
	byEmail map[string]*Account
	byID    map[uuid.UUID]*Account
	used    int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		byEmail: map[string]*Account{},
		byID:    map[uuid.UUID]*Account{},
	}
}

func (f *fakeAccountStore) add(account *Account) {
	if account.Email != nil {
		f.byEmail[*account.Email] = account
	}
	f.byID[account.ID] = account
}

func (f *fakeAccountStore) Create(ctx context.Context, account *Account) (*Account, error) {
	f.add(account)
	return account, nil
}

func (f *fakeAccountStore) GetByEmail(ctx context.Context, email string) (*Account, error) {
	account, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return account, nil
}

func (f *fakeAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFoundError("account not found", nil)
	}
	return account, nil
}

func (f *fakeAccountStore) UsedItems(ctx context.Context, accountID uuid.UUID) int {
	return f.used
}

func storeWithAccount(t *testing.T, email, password string) (*fakeAccountStore, *Account) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	account := &Account{
		ID:             uuid.New(),
		Company:        "Acme Foods",
		Email:          &email,
		HashedPassword: string(hashed),
	}
	store := newFakeAccountStore()
	store.add(account)
	return store, account
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	t.Parallel()

	store, _ := storeWithAccount(t, "user@example.com", "right-password")
	s := NewAuthService(store, testAuthService().authConfig)

	resp, err := s.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "wrong-password"})
	if err == nil {
		t.Fatal("expected error for wrong password, got nil")
	}
	if resp != nil {
		t.Fatal("expected no login response on rejection")
	}
	if !apperror.IsAuthError(err) {
		t.Fatalf("expected an authentication error, got %v", err)
	}
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	t.Parallel()

	store, _ := storeWithAccount(t, "user@example.com", "right-password")
	s := NewAuthService(store, testAuthService().authConfig)

	_, errWrongPassword := s.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "nope"})
	_, errUnknownEmail := s.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "nope"})

	if errWrongPassword == nil || errUnknownEmail == nil {
		t.Fatal("expected both login attempts to fail")
	}
	// Wrong email and wrong password must be indistinguishable to the caller.
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("rejection messages differ: %q vs %q", errWrongPassword.Error(), errUnknownEmail.Error())
	}
	if !apperror.IsAuthError(errUnknownEmail) {
		t.Fatalf("expected an authentication error, got %v", errUnknownEmail)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	store, account := storeWithAccount(t, "user@example.com", "right-password")
	store.used = 3
	s := NewAuthService(store, testAuthService().authConfig)

	resp, err := s.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "right-password"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.Account.ID != account.ID {
		t.Fatalf("account id mismatch: got %s want %s", resp.Account.ID, account.ID)
	}
	if resp.Account.UsedItems != 3 {
		t.Fatalf("used items = %d, want 3", resp.Account.UsedItems)
	}
	claims, err := s.ValidateToken(resp.AccessToken, tokenTypeAccess)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.AccountID != account.ID.String() {
		t.Fatalf("token bound to %s, want %s", claims.AccountID, account.ID)
	}
}

func TestRefreshToken_DeletedAccountRejected(t *testing.T) {
	t.Parallel()

	s := NewAuthService(newFakeAccountStore(), testAuthService().authConfig)
	token, _, err := s.generateSpecificToken(uuid.New(), tokenTypeRefresh, time.Hour)
	if err != nil {
		t.Fatalf("generateSpecificToken error: %v", err)
	}

	// The account behind the token no longer exists; refresh must fail closed.
	if _, err := s.RefreshToken(context.Background(), token); err == nil {
		t.Fatal("expected error refreshing for a deleted account, got nil")
	}
}
