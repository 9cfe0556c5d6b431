package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, transaction_id, amount_cents, payment_method, status, payment_proof_url, created_on, updated_on`

func scanPayment(row interface{ Scan(...interface{}) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	var method, proof sql.NullString
	err := row.Scan(&p.ID, &p.TransactionID, &p.AmountCents, &method, &p.Status, &proof, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Method = domain.PaymentMethod(method.String)
	p.ProofURL = proof.String
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (transaction_id, amount_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on, updated_on`
	now := time.Now()
	return q(ctx, r.db).QueryRowContext(ctx, query, p.TransactionID, p.AmountCents, p.Status, now, now).
		Scan(&p.ID, &p.CreatedOn, &p.UpdatedOn)
}

func (r *paymentRepository) GetByTransactionID(ctx context.Context, transactionID int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`
	return scanPayment(q(ctx, r.db).QueryRowContext(ctx, query, transactionID))
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET payment_method=$1, status=$2, payment_proof_url=$3, updated_on=$4 WHERE id=$5`
	res, err := q(ctx, r.db).ExecContext(ctx, query, p.Method, p.Status, p.ProofURL, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
