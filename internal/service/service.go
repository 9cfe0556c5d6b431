package service

import (
	"context"
	"time"

	"bengkel-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, fullName string, role domain.UserRole, password string) (*domain.User, error)
	// Login verifies credentials and returns a bearer token. Unapproved
	// accounts are refused with ErrNotApproved.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context, offset, limit int32) ([]domain.User, error)
	ApproveUser(ctx context.Context, userID int32) (*domain.User, error)
	GetUser(ctx context.Context, userID int32) (*domain.User, error)
}

type ToolService interface {
	CreateTool(ctx context.Context, tool *domain.Tool) error
	GetTool(ctx context.Context, id int32) (*domain.Tool, error)
	ListTools(ctx context.Context, offset, limit int32) ([]domain.Tool, error)
	UpdateTool(ctx context.Context, tool *domain.Tool) error
	DeleteTool(ctx context.Context, id int32) error
}

// TransactionService is the transaction half of the lifecycle engine. Every
// operation runs as one atomic unit against the store.
type TransactionService interface {
	RequestTransaction(ctx context.Context, userID, toolID int32, txType domain.TransactionType, start, end time.Time) (*domain.Transaction, error)
	ApproveTransaction(ctx context.Context, transactionID int32) (*domain.Transaction, error)
	RejectTransaction(ctx context.Context, transactionID int32) (*domain.Transaction, error)
	RecordPayment(ctx context.Context, userID, transactionID int32, method domain.PaymentMethod, proofURL string) (*domain.Payment, error)
	ListMyTransactions(ctx context.Context, userID int32) ([]domain.Transaction, error)
	ListAllTransactions(ctx context.Context, offset, limit int32) ([]domain.Transaction, error)
	// MarkOverdueTransactions flips APPROVED transactions past their end
	// date to OVERDUE. Invoked by the scheduler, never by a request path.
	MarkOverdueTransactions(ctx context.Context) (int, error)
}

// MaintenanceService is the maintenance half of the lifecycle engine.
type MaintenanceService interface {
	CreateReport(ctx context.Context, toolID, reporterID int32, description string) (*domain.MaintenanceReport, error)
	ListReports(ctx context.Context, offset, limit int32) ([]domain.MaintenanceReport, error)
	AssignTechnician(ctx context.Context, reportID, technicianID int32) (*domain.MaintenanceReport, error)
	ResolveReport(ctx context.Context, reportID int32) (*domain.MaintenanceReport, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID int32, offset, limit int32) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int32) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int32) error
}

type WorkLogService interface {
	CreateWorkLog(ctx context.Context, log *domain.WorkLog) error
	ListWorkLogs(ctx context.Context, userID int32, offset, limit int32) ([]domain.WorkLog, error)
}

// ChatService persists messages and serves conversation history. Real-time
// routing is the connection registry's job; this service only talks to the
// store.
type ChatService interface {
	SaveMessage(ctx context.Context, senderID, receiverID int32, content, attachmentURL string) (*domain.Message, error)
	History(ctx context.Context, userA, userB int32) ([]domain.Message, error)
}

type ReportService interface {
	MonthlyToolUsage(ctx context.Context, year, month int) ([]domain.ToolUsageStat, error)
	MonthlyFinancial(ctx context.Context, year, month int) (*domain.FinancialReport, error)
}

// EmailService sends outbound mail for lifecycle events. Calls are
// best-effort; failures are logged, never surfaced to the caller.
type EmailService interface {
	SendTransactionApproved(ctx context.Context, email, name, toolName string) error
	SendTransactionRejected(ctx context.Context, email, name, toolName string) error
}
