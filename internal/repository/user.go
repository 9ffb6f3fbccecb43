package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/mindfulwealth/backend/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository builds the user repository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, personality, language, preferred_currency, is_demo, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var nameValue *string

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &nameValue,
		&user.Personality, &user.Language, &user.PreferredCurrency, &user.IsDemo,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return user, err
	}

	user.Name = nameValue
	return user, nil
}

// Create inserts a user with the default style preferences.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, name *string, isDemo bool) (models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name, is_demo)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		email, passwordHash, name, isDemo,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user, ErrConflict
		}
		return user, err
	}

	return user, nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// UpdatePreferences stores the user's reply style settings.
func (r *UserRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, personality, language, currency string) (models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users
		 SET personality = $2, language = $3, preferred_currency = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, personality, language, currency,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}
