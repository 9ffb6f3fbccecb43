package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

type DashboardSummary struct {
	TotalSpent       decimal.Decimal
	TotalBudget      decimal.Decimal
	TotalSaved       decimal.Decimal
	ImpulseCount     int
	TransactionCount int
}

// NewDashboardRepository builds the dashboard repository.
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Summary aggregates the user's month: spend and budget totals plus the
// money kept by skipping impulses.
func (r *DashboardRepository) Summary(ctx context.Context, userID uuid.UUID, month string) (DashboardSummary, error) {
	var summary DashboardSummary

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(spent), 0), COALESCE(SUM(planned), 0)
		 FROM budgets
		 WHERE user_id = $1 AND month = $2`,
		userID, month,
	).Scan(&summary.TotalSpent, &summary.TotalBudget)
	if err != nil {
		return summary, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*)
		 FROM saved_impulses
		 WHERE user_id = $1`,
		userID,
	).Scan(&summary.TotalSaved, &summary.ImpulseCount)
	if err != nil {
		return summary, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM transactions
		 WHERE user_id = $1 AND to_char(spent_at, 'YYYY-MM') = $2`,
		userID, month,
	).Scan(&summary.TransactionCount)
	if err != nil {
		return summary, err
	}

	return summary, nil
}
