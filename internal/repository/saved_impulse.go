package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/models"
)

type SavedImpulseRepository struct {
	db *pgxpool.Pool
}

// NewSavedImpulseRepository builds the saved-impulse repository.
func NewSavedImpulseRepository(db *pgxpool.Pool) *SavedImpulseRepository {
	return &SavedImpulseRepository{db: db}
}

type CreateSavedImpulseInput struct {
	UserID         uuid.UUID
	Item           string
	Amount         decimal.Decimal
	Currency       string
	ProjectedValue decimal.Decimal
	Projected5Yr   decimal.Decimal
}

// Create records an impulse the user resisted.
func (r *SavedImpulseRepository) Create(ctx context.Context, input CreateSavedImpulseInput) (models.SavedImpulse, error) {
	if !input.Amount.IsPositive() || input.Item == "" {
		return models.SavedImpulse{}, ErrInvalid
	}

	var impulse models.SavedImpulse
	err := r.db.QueryRow(ctx,
		`INSERT INTO saved_impulses (user_id, item, amount, currency, projected_value_1yr, projected_value_5yr)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, item, amount, currency, projected_value_1yr, projected_value_5yr, created_at`,
		input.UserID, input.Item, input.Amount, input.Currency, input.ProjectedValue, input.Projected5Yr,
	).Scan(&impulse.ID, &impulse.UserID, &impulse.Item, &impulse.Amount, &impulse.Currency,
		&impulse.ProjectedValue, &impulse.Projected5Yr, &impulse.CreatedAt)
	if err != nil {
		return impulse, err
	}

	return impulse, nil
}

// ListByUser returns the user's saved impulses, most recent first.
func (r *SavedImpulseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedImpulse, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, item, amount, currency, projected_value_1yr, projected_value_5yr, created_at
		 FROM saved_impulses
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	impulses := make([]models.SavedImpulse, 0)
	for rows.Next() {
		var impulse models.SavedImpulse
		err := rows.Scan(&impulse.ID, &impulse.UserID, &impulse.Item, &impulse.Amount, &impulse.Currency,
			&impulse.ProjectedValue, &impulse.Projected5Yr, &impulse.CreatedAt)
		if err != nil {
			return nil, err
		}
		impulses = append(impulses, impulse)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return impulses, nil
}

// TotalSaved sums the amounts the user chose not to spend.
func (r *SavedImpulseRepository) TotalSaved(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM saved_impulses WHERE user_id = $1`,
		userID,
	).Scan(&total)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return total, nil
}
