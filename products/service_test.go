package products

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/pantry-go/apperror"
)

// fakeStore is an in-memory Store keyed by barcode.
type fakeStore struct {
	products map[string]*KnownProduct
	getErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: map[string]*KnownProduct{}}
}

func (f *fakeStore) GetByBarcode(ctx context.Context, barcode string) (*KnownProduct, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.products[barcode]
	if !ok {
		return nil, apperror.NewNotFoundError("known product not found", nil)
	}
	return p, nil
}

func (f *fakeStore) Insert(ctx context.Context, product *KnownProduct) (*KnownProduct, error) {
	if _, ok := f.products[product.Barcode]; ok {
		return nil, apperror.NewConflictError("product with this barcode already exists", nil)
	}
	f.products[product.Barcode] = product
	return product, nil
}

func (f *fakeStore) Ensure(ctx context.Context, db DBTX, product *KnownProduct) error {
	if _, ok := f.products[product.Barcode]; ok {
		return nil
	}
	f.products[product.Barcode] = product
	return nil
}

// fakeLookup returns a canned answer and counts calls, so tests can assert
// the cache short-circuits the external hop.
type fakeLookup struct {
	info  *ProductInfo
	err   error
	calls int
}

func (f *fakeLookup) Fetch(ctx context.Context, barcode string) (*ProductInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func strPtr(s string) *string { return &s }

func TestResolve_CacheHitSkipsLookup(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.products["111"] = &KnownProduct{
		Barcode:  "111",
		Name:     "Oat Milk",
		Brand:    strPtr("Oatly"),
		Category: strPtr("Dairy alternatives"),
	}
	lookup := &fakeLookup{}
	s := NewService(store, lookup)

	info := s.Resolve(context.Background(), "111")

	assert.Equal(t, "Oat Milk", info.Name)
	require.NotNil(t, info.Brand)
	assert.Equal(t, "Oatly", *info.Brand)
	assert.True(t, info.IsKnownProduct)
	assert.Nil(t, info.Error)
	assert.Equal(t, 0, lookup.calls, "cache hit must not reach the external lookup")
}

func TestResolve_CacheMissFallsBackToLookup(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	lookup := &fakeLookup{info: &ProductInfo{Name: "Peanut Butter", Brand: strPtr("Calve")}}
	s := NewService(store, lookup)

	info := s.Resolve(context.Background(), "222")

	assert.Equal(t, "Peanut Butter", info.Name)
	assert.False(t, info.IsKnownProduct)
	assert.Nil(t, info.Error)
	assert.Equal(t, 1, lookup.calls)
	assert.Empty(t, store.products, "resolution must not write into the cache")
}

func TestResolve_LookupNotFound(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	lookup := &fakeLookup{err: apperror.NewNotFoundError("product not found in database", nil)}
	s := NewService(store, lookup)

	info := s.Resolve(context.Background(), "333")

	assert.Equal(t, "Unknown Product", info.Name)
	require.NotNil(t, info.Error)
	assert.Equal(t, "Product not found in database", *info.Error)
	assert.False(t, info.IsKnownProduct)
}

func TestResolve_LookupFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	lookup := &fakeLookup{err: apperror.NewExternalServiceError("product lookup request failed", errors.New("timeout"))}
	s := NewService(store, lookup)

	info := s.Resolve(context.Background(), "444")

	assert.Equal(t, "Unknown Product", info.Name)
	require.NotNil(t, info.Error)
	assert.Equal(t, "Error processing barcode", *info.Error)
}

func TestResolve_CacheFailureStillAnswers(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.getErr = apperror.NewDatabaseError("connection refused", nil)
	lookup := &fakeLookup{info: &ProductInfo{Name: "Chickpeas"}}
	s := NewService(store, lookup)

	info := s.Resolve(context.Background(), "555")

	assert.Equal(t, "Chickpeas", info.Name)
	assert.Nil(t, info.Error)
	assert.Equal(t, 1, lookup.calls)
}

func TestEnsureKnown(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	s := NewService(store, &fakeLookup{})
	accountID := uuid.New()

	require.NoError(t, s.EnsureKnown(context.Background(), nil, "Soy Sauce", "666", accountID))
	require.Contains(t, store.products, "666")
	assert.Equal(t, "Soy Sauce", store.products["666"].Name)
	assert.Equal(t, accountID, store.products["666"].CreatedBy)

	// A second ensure for the same barcode leaves the first record in place.
	require.NoError(t, s.EnsureKnown(context.Background(), nil, "Other Name", "666", uuid.New()))
	assert.Equal(t, "Soy Sauce", store.products["666"].Name)
}

func TestEnsureKnown_EmptyNameGetsPlaceholder(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	s := NewService(store, &fakeLookup{})

	require.NoError(t, s.EnsureKnown(context.Background(), nil, "", "777", uuid.New()))
	assert.Equal(t, "Unknown Product", store.products["777"].Name)
}

func TestCreateKnownProduct_Duplicate(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	s := NewService(store, &fakeLookup{})
	req := CreateKnownProductRequest{Barcode: "888", Name: "Tahini"}

	_, err := s.CreateKnownProduct(context.Background(), req, uuid.New())
	require.NoError(t, err)

	_, err = s.CreateKnownProduct(context.Background(), req, uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsConflictError(err))
}
