package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bengkel-backend/internal/repository"

	_ "github.com/lib/pq"
)

// querier is the subset of *sql.DB / *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// q returns the transaction stored in ctx by WithinTx, or the plain db handle.
func q(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// Store bundles all repositories over one database handle.
type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ToolRepository
	repository.TransactionRepository
	repository.PaymentRepository
	repository.MaintenanceRepository
	repository.WorkLogRepository
	repository.MessageRepository
	repository.NotificationRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ToolRepository:         NewToolRepository(db),
		TransactionRepository:  NewTransactionRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		MaintenanceRepository:  NewMaintenanceRepository(db),
		WorkLogRepository:      NewWorkLogRepository(db),
		MessageRepository:      NewMessageRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		ReportRepository:       NewReportRepository(db),
	}
}

// WithinTx starts a database transaction, stashes it in the context and runs
// fn. Repository calls made with that context join the transaction. A non-nil
// error from fn rolls everything back.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}
