package pantry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/auth"
)

// stubService returns canned answers so handler behavior can be tested
// without a database.
type stubService struct {
	item    *PantryItem
	list    *PantryListResponse
	err     error
	lastReq CreatePantryItemRequest
}

func (s *stubService) CreateItem(ctx context.Context, req CreatePantryItemRequest, accountID uuid.UUID) (*PantryItem, error) {
	s.lastReq = req
	return s.item, s.err
}

func (s *stubService) GetItem(ctx context.Context, itemID, accountID uuid.UUID) (*PantryItem, error) {
	return s.item, s.err
}

func (s *stubService) ListItems(ctx context.Context, accountID uuid.UUID) (*PantryListResponse, error) {
	return s.list, s.err
}

func (s *stubService) DeleteItem(ctx context.Context, itemID, accountID uuid.UUID) (*PantryItem, error) {
	return s.item, s.err
}

// newRouter mounts the handlers the way main does, minus auth middleware;
// tests inject the account into the context directly.
func newRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/pantry/item", h.HandleCreateItem())
	r.Get("/pantry/item/{itemID}", h.HandleGetItem())
	r.Get("/pantry/items", h.HandleListItems())
	r.Delete("/pantry/item/{itemID}", h.HandleDeleteItem())
	return r
}

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	account := &auth.Account{ID: uuid.New()}
	return req.WithContext(auth.NewContextWithAccount(req.Context(), account))
}

func TestHandleCreateItem(t *testing.T) {
	t.Parallel()

	item := &PantryItem{ID: uuid.New(), Name: "Oat milk", Quantity: 2}
	svc := &stubService{item: item}
	router := newRouter(NewHandlers(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/pantry/item",
		`{"name":"Oat milk","quantity":2,"barcode":"3017620422003"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Oat milk", svc.lastReq.Name)
	require.NotNil(t, svc.lastReq.Barcode)
	assert.Equal(t, "3017620422003", *svc.lastReq.Barcode)

	var got PantryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, item.ID, got.ID)
}

func TestHandleCreateItem_InvalidBody(t *testing.T) {
	t.Parallel()

	router := newRouter(NewHandlers(&stubService{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/pantry/item", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateItem_MissingAccount(t *testing.T) {
	t.Parallel()

	router := newRouter(NewHandlers(&stubService{}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pantry/item", strings.NewReader(`{"name":"x"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleListItems_EmptyListNotNull(t *testing.T) {
	t.Parallel()

	svc := &stubService{list: &PantryListResponse{Data: []PantryItem{}, Total: 0}}
	router := newRouter(NewHandlers(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/pantry/items", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, rec.Body.String())
}

func TestHandleGetItem_UnparseableIDReportsNotFound(t *testing.T) {
	t.Parallel()

	router := newRouter(NewHandlers(&stubService{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/pantry/item/not-a-uuid", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "pantry item not found")
}

func TestHandleGetItem_ServiceNotFound(t *testing.T) {
	t.Parallel()

	svc := &stubService{err: apperror.NewNotFoundError("pantry item not found", nil)}
	router := newRouter(NewHandlers(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/pantry/item/"+uuid.NewString(), ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteItem_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	item := &PantryItem{ID: uuid.New(), Name: "Chickpeas", Quantity: 1}
	svc := &stubService{item: item}
	router := newRouter(NewHandlers(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/pantry/item/"+item.ID.String(), ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got PantryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Chickpeas", got.Name)
}
