package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Name              *string   `json:"name,omitempty"`
	Personality       string    `json:"personality"`
	Language          string    `json:"language"`
	PreferredCurrency string    `json:"preferred_currency"`
	IsDemo            bool      `json:"is_demo"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}

// Transaction is a recorded spend. IsImpulse mirrors the engine
// classification at the time the message was processed.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Category  string          `json:"category"`
	IsImpulse bool            `json:"is_impulse"`
	SpentAt   time.Time       `json:"spent_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// Budget tracks planned vs spent per category and month ("YYYY-MM").
type Budget struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Category  string          `json:"category"`
	Month     string          `json:"month"`
	Planned   decimal.Decimal `json:"planned"`
	Spent     decimal.Decimal `json:"spent"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SavedImpulse is an impulse purchase the user decided to skip; the
// projections show what the money could become invested instead.
type SavedImpulse struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Item           string          `json:"item"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	ProjectedValue decimal.Decimal `json:"projected_value_1yr"`
	Projected5Yr   decimal.Decimal `json:"projected_value_5yr"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ChatLog is one stored chat exchange, with the structured payload the
// engine produced (if any).
type ChatLog struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Message       string          `json:"message"`
	Response      string          `json:"response"`
	FinancialData json.RawMessage `json:"financial_data,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
