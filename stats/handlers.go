// Package stats, HTTP handlers.
package stats

import (
	"net/http"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/auth"
)

// Handlers wraps the StatsService to provide HTTP handlers.
type Handlers struct {
	service *StatsService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *StatsService) *Handlers {
	return &Handlers{service: service}
}

// HandleGetMyStats godoc
// @Summary Get current account's usage statistics
// @Description Returns aggregate item counts and environmental-impact metrics for the acting account.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} stats.UsageStatistics "Usage statistics"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /stats/me [get]
func (h *Handlers) HandleGetMyStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("could not validate credentials", nil))
			return
		}

		stats, err := h.service.GetForAccount(r.Context(), accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, stats)
	}
}
