package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, tool_id, user_id, transaction_type, status, start_date, end_date,
	return_date, return_notes, return_photo_url, created_on, updated_on`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var notes, photo sql.NullString
	err := row.Scan(&t.ID, &t.ToolID, &t.UserID, &t.Type, &t.Status, &t.StartDate, &t.EndDate,
		&t.ReturnDate, &notes, &photo, &t.CreatedOn, &t.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.ReturnNotes = notes.String
	t.ReturnPhotoURL = photo.String
	return t, nil
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (tool_id, user_id, transaction_type, status, start_date, end_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on, updated_on`
	now := time.Now()
	return q(ctx, r.db).QueryRowContext(ctx, query,
		t.ToolID, t.UserID, t.Type, t.Status, t.StartDate, t.EndDate, now, now).
		Scan(&t.ID, &t.CreatedOn, &t.UpdatedOn)
}

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *transactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	query := `UPDATE transactions SET status=$1, return_date=$2, return_notes=$3, return_photo_url=$4, updated_on=$5
	          WHERE id=$6`
	res, err := q(ctx, r.db).ExecContext(ctx, query,
		t.Status, t.ReturnDate, t.ReturnNotes, t.ReturnPhotoURL, time.Now(), t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, query, userID)
}

func (r *transactionRepository) ListAll(ctx context.Context, offset, limit int32) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}

func (r *transactionRepository) MarkOverdue(ctx context.Context) ([]domain.Transaction, error) {
	query := `UPDATE transactions SET status = $1, updated_on = $2
	          WHERE status = $3 AND end_date < $2
	          RETURNING ` + transactionColumns
	rows, err := q(ctx, r.db).QueryContext(ctx, query,
		domain.TransactionStatusOverdue, time.Now(), domain.TransactionStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}
