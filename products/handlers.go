// Package products, HTTP handlers for barcode scanning and explicit
// known-product management.
package products

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/auth"
)

// Handlers wraps the products Service to provide HTTP handlers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleScan godoc
// @Summary Scan a barcode
// @Description Resolves a barcode to product information, cache-first with external fallback. This endpoint always answers with a ProductInfo; lookup failures are reported in its error field.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param barcode path string true "Product barcode"
// @Success 200 {object} products.ProductInfo "Resolved product information"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing barcode"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /scan/{barcode} [get]
func (h *Handlers) HandleScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		barcode := chi.URLParam(r, "barcode")
		if barcode == "" {
			auth.WriteError(w, r, apperror.NewValidationError("barcode is required", nil))
			return
		}

		info := h.service.Resolve(r.Context(), barcode)

		auth.WriteJSON(w, http.StatusOK, info)
	}
}

// HandleCreateKnownProduct godoc
// @Summary Create a known product
// @Description Explicitly adds a product to the known-product cache, attributed to the acting account. Requires a verified account.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productBody body products.CreateKnownProductRequest true "Product details"
// @Success 201 {object} products.KnownProduct "Product created"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing barcode or name"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} apperror.ErrorResponse "Forbidden - Account not verified"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - Barcode already known"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /products [post]
func (h *Handlers) HandleCreateKnownProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("could not validate credentials", nil))
			return
		}

		var req CreateKnownProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Barcode == "" || req.Name == "" {
			auth.WriteError(w, r, apperror.NewValidationError("barcode and name are required", nil))
			return
		}

		product, err := h.service.CreateKnownProduct(r.Context(), req, accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, product)
	}
}

// HandleGetKnownProduct godoc
// @Summary Get a known product
// @Description Returns a cached product record by barcode.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param barcode path string true "Product barcode"
// @Success 200 {object} products.KnownProduct "Known product"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Barcode not in cache"
// @Router /products/{barcode} [get]
func (h *Handlers) HandleGetKnownProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		barcode := chi.URLParam(r, "barcode")
		if barcode == "" {
			auth.WriteError(w, r, apperror.NewValidationError("barcode is required", nil))
			return
		}

		product, err := h.service.GetKnownProduct(r.Context(), barcode)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, product)
	}
}
