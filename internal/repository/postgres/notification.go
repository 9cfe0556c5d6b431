package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, message, link_url, is_read, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return q(ctx, r.db).QueryRowContext(ctx, query, n.UserID, n.Message, n.LinkURL, n.IsRead, time.Now()).
		Scan(&n.ID, &n.CreatedOn)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int32, offset, limit int32) ([]domain.Notification, error) {
	query := `SELECT id, user_id, message, link_url, is_read, created_on
	          FROM notifications WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var link sql.NullString
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &link, &n.IsRead, &n.CreatedOn); err != nil {
			return nil, err
		}
		n.LinkURL = link.String
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int32) (*domain.Notification, error) {
	// The user_id predicate is the ownership check: a foreign notification
	// is indistinguishable from a missing one.
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2
	          RETURNING id, user_id, message, link_url, is_read, created_on`
	n := &domain.Notification{}
	var link sql.NullString
	err := q(ctx, r.db).QueryRowContext(ctx, query, id, userID).
		Scan(&n.ID, &n.UserID, &n.Message, &link, &n.IsRead, &n.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	n.LinkURL = link.String
	return n, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int32) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`
	_, err := q(ctx, r.db).ExecContext(ctx, query, userID)
	return err
}
