package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/security"
)

// fakeTxManager runs the callback directly; unit tests assert on repository
// calls, not transaction plumbing.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, offset, limit int32) ([]domain.User, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Approve(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) List(ctx context.Context, offset, limit int32) ([]domain.Tool, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) Update(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListAll(ctx context.Context, offset, limit int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) MarkOverdue(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByTransactionID(ctx context.Context, transactionID int32) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, report *domain.MaintenanceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceReport), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, report *domain.MaintenanceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListAll(ctx context.Context, offset, limit int32) ([]domain.MaintenanceReport, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.MaintenanceReport), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID int32, offset, limit int32) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, offset, limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id, userID int32) (*domain.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) History(ctx context.Context, userA, userB int32) ([]domain.Message, error) {
	args := m.Called(ctx, userA, userB)
	return args.Get(0).([]domain.Message), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendTransactionApproved(ctx context.Context, email, name, toolName string) error {
	args := m.Called(ctx, email, name, toolName)
	return args.Error(0)
}
func (m *MockEmailService) SendTransactionRejected(ctx context.Context, email, name, toolName string) error {
	args := m.Called(ctx, email, name, toolName)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.UserRole) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
