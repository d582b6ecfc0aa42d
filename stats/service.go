// Package stats exposes per-account usage statistics: aggregate item counts
// and environmental-impact metrics. The records are produced elsewhere; this
// module only reads them.
package stats

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/pantry-go/apperror"
)

// UsageStatistics is the per-account aggregate read model.
type UsageStatistics struct {
	AccountID              uuid.UUID `json:"account_id"`
	TrackedItems           int       `json:"tracked_items"`
	ItemsUsed              int       `json:"items_used"`
	TotalItems             int       `json:"total_items"`
	EnvironmentImpactCO2   float64   `json:"environment_impact_co2"`
	EnvironmentImpactWater float64   `json:"environment_impact_water"`
}

// StatsService provides read access to usage statistics.
type StatsService struct {
	db *pgxpool.Pool
}

// NewStatsService creates a new StatsService.
func NewStatsService(db *pgxpool.Pool) *StatsService {
	return &StatsService{db: db}
}

// GetForAccount returns the statistics for an account. An account without a
// statistics row gets zero-valued statistics rather than an error.
func (s *StatsService) GetForAccount(ctx context.Context, accountID uuid.UUID) (*UsageStatistics, error) {
	stats := &UsageStatistics{AccountID: accountID}
	query := `SELECT tracked_items, items_used, total_items, environment_impact_co2, environment_impact_water
	          FROM usage_statistics WHERE account_id = $1`
	err := s.db.QueryRow(ctx, query, accountID).Scan(
		&stats.TrackedItems,
		&stats.ItemsUsed,
		&stats.TotalItems,
		&stats.EnvironmentImpactCO2,
		&stats.EnvironmentImpactWater,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stats, nil
		}
		return nil, apperror.NewDatabaseError("failed to get usage statistics", err)
	}
	return stats, nil
}
