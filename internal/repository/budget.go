package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/models"
)

type BudgetRepository struct {
	db *pgxpool.Pool
}

// NewBudgetRepository builds the budget repository.
func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Planned headroom applied when a category is seen for the first time.
var firstSightPlanFactor = decimal.RequireFromString("1.2")

// MonthKey renders the month bucket budgets are keyed by.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// ApplySpend adds a spend to the category's monthly budget row, creating it
// with planned = amount * 1.2 on first sight.
func (r *BudgetRepository) ApplySpend(ctx context.Context, userID uuid.UUID, category, month string, amount decimal.Decimal) (models.Budget, error) {
	if !amount.IsPositive() {
		return models.Budget{}, ErrInvalid
	}

	var budget models.Budget
	err := r.db.QueryRow(ctx,
		`INSERT INTO budgets (user_id, category, month, planned, spent)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, category, month)
		 DO UPDATE SET spent = budgets.spent + EXCLUDED.spent, updated_at = NOW()
		 RETURNING id, user_id, category, month, planned, spent, created_at, updated_at`,
		userID, category, month, amount.Mul(firstSightPlanFactor).Round(2), amount,
	).Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Month,
		&budget.Planned, &budget.Spent, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return budget, err
	}

	return budget, nil
}

// SetPlanned sets the planned amount for a category and month.
func (r *BudgetRepository) SetPlanned(ctx context.Context, userID uuid.UUID, category, month string, planned decimal.Decimal) (models.Budget, error) {
	if planned.IsNegative() {
		return models.Budget{}, ErrInvalid
	}

	var budget models.Budget
	err := r.db.QueryRow(ctx,
		`INSERT INTO budgets (user_id, category, month, planned, spent)
		 VALUES ($1, $2, $3, $4, 0)
		 ON CONFLICT (user_id, category, month)
		 DO UPDATE SET planned = EXCLUDED.planned, updated_at = NOW()
		 RETURNING id, user_id, category, month, planned, spent, created_at, updated_at`,
		userID, category, month, planned,
	).Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Month,
		&budget.Planned, &budget.Spent, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return budget, err
	}

	return budget, nil
}

// ListByMonth returns the user's budget rows for one month.
func (r *BudgetRepository) ListByMonth(ctx context.Context, userID uuid.UUID, month string) ([]models.Budget, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, category, month, planned, spent, created_at, updated_at
		 FROM budgets
		 WHERE user_id = $1 AND month = $2
		 ORDER BY category`,
		userID, month,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		var budget models.Budget
		err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Month,
			&budget.Planned, &budget.Spent, &budget.CreatedAt, &budget.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return budgets, nil
}

// Get returns one budget row.
func (r *BudgetRepository) Get(ctx context.Context, userID uuid.UUID, category, month string) (models.Budget, error) {
	var budget models.Budget
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, category, month, planned, spent, created_at, updated_at
		 FROM budgets
		 WHERE user_id = $1 AND category = $2 AND month = $3`,
		userID, category, month,
	).Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Month,
		&budget.Planned, &budget.Spent, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget, ErrNotFound
		}
		return budget, err
	}

	return budget, nil
}
