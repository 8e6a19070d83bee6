package repository

import (
	"context"
	"database/sql"

	"github.com/folio/folio-go/internal/model"
)

// MessageRepository stores contact-form submissions.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message.
func (r *MessageRepository) Create(ctx context.Context, m *model.Message) error {
	query := `INSERT INTO messages (id, name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt)
	return err
}

// ListRecent returns at most limit messages, newest first.
func (r *MessageRepository) ListRecent(ctx context.Context, limit int) ([]model.Message, error) {
	query := `SELECT id, name, email, subject, message, created_at
		FROM messages ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
