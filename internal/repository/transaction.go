package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/models"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository builds the transaction repository.
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

type CreateTransactionInput struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Currency  string
	Category  string
	IsImpulse bool
	SpentAt   time.Time
}

// Create records one spend.
func (r *TransactionRepository) Create(ctx context.Context, input CreateTransactionInput) (models.Transaction, error) {
	if !input.Amount.IsPositive() {
		return models.Transaction{}, ErrInvalid
	}

	spentAt := input.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now().UTC()
	}

	var tx models.Transaction
	err := r.db.QueryRow(ctx,
		`INSERT INTO transactions (user_id, amount, currency, category, is_impulse, spent_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, amount, currency, category, is_impulse, spent_at, created_at`,
		input.UserID, input.Amount, input.Currency, input.Category, input.IsImpulse, spentAt,
	).Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Currency, &tx.Category, &tx.IsImpulse, &tx.SpentAt, &tx.CreatedAt)
	if err != nil {
		return tx, err
	}

	return tx, nil
}

// ListByUser returns the user's transactions, most recent first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount, currency, category, is_impulse, spent_at, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY spent_at DESC, created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Currency, &tx.Category, &tx.IsImpulse, &tx.SpentAt, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
