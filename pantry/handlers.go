// Package pantry, HTTP handlers. Thin request/response mapping over the
// PantryService interface.
package pantry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/auth"
)

// Handlers wraps a PantryService to provide HTTP handlers.
type Handlers struct {
	service PantryService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service PantryService) *Handlers {
	return &Handlers{service: service}
}

// HandleCreateItem godoc
// @Summary Create a pantry item
// @Description Creates a pantry item owned by the acting account. When the item carries an unknown barcode, a known-product record is created best-effort.
// @Tags Pantry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemBody body pantry.CreatePantryItemRequest true "Pantry item details"
// @Success 201 {object} pantry.PantryItem "Pantry item created"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /pantry/item [post]
func (h *Handlers) HandleCreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("could not validate credentials", nil))
			return
		}

		var req CreatePantryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		item, err := h.service.CreateItem(r.Context(), req, accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, item)
	}
}

// HandleGetItem godoc
// @Summary Get a pantry item
// @Description Returns a single pantry item owned by the acting account. Items owned by other accounts are reported as not found.
// @Tags Pantry
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Pantry item ID"
// @Success 200 {object} pantry.PantryItem "Pantry item"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No owned item with this ID"
// @Router /pantry/item/{itemID} [get]
func (h *Handlers) HandleGetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("could not validate credentials", nil))
			return
		}

		// An unparseable ID cannot match an owned item; report it the same
		// way as a missing one.
		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewNotFoundError("pantry item not found", nil))
			return
		}

		item, err := h.service.GetItem(r.Context(), itemID, accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, item)
	}
}

// HandleListItems godoc
// @Summary List pantry items
// @Description Returns every pantry item owned by the acting account, plus a count.
// @Tags Pantry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} pantry.PantryListResponse "Owned pantry items"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /pantry/items [get]
func (h *Handlers) HandleListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("could not validate credentials", nil))
			return
		}

		resp, err := h.service.ListItems(r.Context(), accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleDeleteItem godoc
// @Summary Delete a pantry item
// @Description Deletes a pantry item owned by the acting account and returns the pre-deletion snapshot.
// @Tags Pantry
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Pantry item ID"
// @Success 200 {object} pantry.PantryItem "Deleted pantry item"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No owned item with this ID"
// @Router /pantry/item/{itemID} [delete]
func (h *Handlers) HandleDeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("could not validate credentials", nil))
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewNotFoundError("pantry item not found", nil))
			return
		}

		item, err := h.service.DeleteItem(r.Context(), itemID, accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, item)
	}
}
