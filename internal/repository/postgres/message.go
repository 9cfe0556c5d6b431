package postgres

import (
	"context"
	"database/sql"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, content, attachment_url, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return q(ctx, r.db).QueryRowContext(ctx, query, m.SenderID, m.ReceiverID, m.Content, m.AttachmentURL, time.Now()).
		Scan(&m.ID, &m.CreatedOn)
}

func (r *messageRepository) History(ctx context.Context, userA, userB int32) ([]domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, content, attachment_url, created_on
	          FROM messages
	          WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	          ORDER BY created_on ASC`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		var attachment sql.NullString
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &attachment, &m.CreatedOn); err != nil {
			return nil, err
		}
		m.AttachmentURL = attachment.String
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
