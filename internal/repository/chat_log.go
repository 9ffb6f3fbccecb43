package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/mindfulwealth/backend/internal/models"
)

type ChatLogRepository struct {
	db *pgxpool.Pool
}

// NewChatLogRepository builds the chat log repository.
func NewChatLogRepository(db *pgxpool.Pool) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Log stores one chat exchange. financialData may be nil.
func (r *ChatLogRepository) Log(ctx context.Context, userID uuid.UUID, message, response string, financialData []byte) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_logs (user_id, message, response, financial_data)
		 VALUES ($1, $2, $3, NULLIF($4, '')::jsonb)`,
		userID, message, response, string(financialData),
	)
	return err
}

// Recent returns the user's last exchanges, oldest first, for prompt
// history.
func (r *ChatLogRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatLog, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, message, response, COALESCE(financial_data::text, ''), created_at
		 FROM chat_logs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.ChatLog, 0)
	for rows.Next() {
		var log models.ChatLog
		var data string
		err := rows.Scan(&log.ID, &log.UserID, &log.Message, &log.Response, &data, &log.CreatedAt)
		if err != nil {
			return nil, err
		}
		if data != "" {
			log.FinancialData = []byte(data)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	return logs, nil
}
