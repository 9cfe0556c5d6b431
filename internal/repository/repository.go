package repository

import (
	"context"
	"errors"

	"bengkel-backend/internal/domain"
)

// ErrNotFound is returned by Get* methods when no row matches. Services
// translate it into their own error taxonomy.
var ErrNotFound = errors.New("record not found")

// TxManager runs fn inside a single database transaction. Repository methods
// called with the context passed to fn join that transaction, so a lifecycle
// operation's multi-row mutations commit or roll back as one unit.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int32) ([]domain.User, error)
	Approve(ctx context.Context, id int32) (*domain.User, error)
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	// GetByIDForUpdate locks the tool row for the duration of the enclosing
	// transaction so concurrent status checks serialize.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Tool, error)
	List(ctx context.Context, offset, limit int32) ([]domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error
	Delete(ctx context.Context, id int32) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error)
	ListAll(ctx context.Context, offset, limit int32) ([]domain.Transaction, error)
	// MarkOverdue flips APPROVED transactions whose end date has passed to
	// OVERDUE and returns the affected rows.
	MarkOverdue(ctx context.Context) ([]domain.Transaction, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByTransactionID(ctx context.Context, transactionID int32) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, report *domain.MaintenanceReport) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceReport, error)
	Update(ctx context.Context, report *domain.MaintenanceReport) error
	ListAll(ctx context.Context, offset, limit int32) ([]domain.MaintenanceReport, error)
}

type WorkLogRepository interface {
	Create(ctx context.Context, log *domain.WorkLog) error
	ListByUser(ctx context.Context, userID int32, offset, limit int32) ([]domain.WorkLog, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// History returns all messages between the two users, both directions,
	// oldest first.
	History(ctx context.Context, userA, userB int32) ([]domain.Message, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, userID int32, offset, limit int32) ([]domain.Notification, error)
	// MarkRead only updates a notification owned by userID; returns
	// ErrNotFound otherwise.
	MarkRead(ctx context.Context, id, userID int32) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int32) error
}

type ReportRepository interface {
	ToolUsageByMonth(ctx context.Context, year, month int) ([]domain.ToolUsageStat, error)
	RentalIncomeByMonth(ctx context.Context, year, month int) (int64, error)
}
