package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository"
	"bengkel-backend/internal/utils"
)

type transactionService struct {
	txm           repository.TxManager
	tools         repository.ToolRepository
	transactions  repository.TransactionRepository
	payments      repository.PaymentRepository
	notifications repository.NotificationRepository
	users         repository.UserRepository
	email         EmailService
	log           *slog.Logger
}

func NewTransactionService(
	txm repository.TxManager,
	tools repository.ToolRepository,
	transactions repository.TransactionRepository,
	payments repository.PaymentRepository,
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	email EmailService,
) TransactionService {
	return &transactionService{
		txm:           txm,
		tools:         tools,
		transactions:  transactions,
		payments:      payments,
		notifications: notifications,
		users:         users,
		email:         email,
		log:           logger.WithComponent("transaction-service"),
	}
}

// RequestTransaction creates a lending or rental request. The tool row is
// locked for the duration of the transaction, so of two concurrent requests
// for the same tool exactly one succeeds and the other sees BORROWED.
func (s *transactionService) RequestTransaction(ctx context.Context, userID, toolID int32, txType domain.TransactionType, start, end time.Time) (*domain.Transaction, error) {
	if txType != domain.TransactionTypeLending && txType != domain.TransactionTypeRental {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, txType)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}

	var created *domain.Transaction
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		tool, err := s.tools.GetByIDForUpdate(ctx, toolID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: tool %d", ErrNotFound, toolID)
			}
			return fmt.Errorf("failed to load tool: %w", err)
		}

		if tool.Status != domain.ToolStatusAvailable {
			return fmt.Errorf("%w: tool is not available", ErrInvalidState)
		}
		if txType == domain.TransactionTypeRental && !tool.Rentable() {
			return fmt.Errorf("%w: tool is not available for rental", ErrInvalidState)
		}

		tx := &domain.Transaction{
			ToolID:    toolID,
			UserID:    userID,
			Type:      txType,
			Status:    domain.TransactionStatusPendingApproval,
			StartDate: start,
			EndDate:   end,
		}
		if err := s.transactions.Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if txType == domain.TransactionTypeRental {
			amount, err := utils.RentalAmountCents(*tool.PricePerDayCents, start, end)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrValidation, err)
			}
			payment := &domain.Payment{
				TransactionID: tx.ID,
				AmountCents:   amount,
				Status:        domain.PaymentStatusPending,
			}
			if err := s.payments.Create(ctx, payment); err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}
		}

		if err := s.tools.UpdateStatus(ctx, toolID, domain.ToolStatusBorrowed); err != nil {
			return fmt.Errorf("failed to update tool status: %w", err)
		}

		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("transaction requested",
		"transaction_id", created.ID, "tool_id", toolID, "user_id", userID, "type", txType)
	return created, nil
}

// ApproveTransaction moves a PENDING_APPROVAL transaction to APPROVED and
// notifies the requester. Approving a transaction in any other state is a
// no-op that returns it unchanged.
func (s *transactionService) ApproveTransaction(ctx context.Context, transactionID int32) (*domain.Transaction, error) {
	return s.decide(ctx, transactionID, true)
}

// RejectTransaction moves a PENDING_APPROVAL transaction to REJECTED, returns
// the tool to AVAILABLE and notifies the requester. Same no-op rule as
// ApproveTransaction.
func (s *transactionService) RejectTransaction(ctx context.Context, transactionID int32) (*domain.Transaction, error) {
	return s.decide(ctx, transactionID, false)
}

func (s *transactionService) decide(ctx context.Context, transactionID int32, approve bool) (*domain.Transaction, error) {
	var result *domain.Transaction
	var toolName string
	transitioned := false

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		tx, err := s.transactions.GetByID(ctx, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: transaction %d", ErrNotFound, transactionID)
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		result = tx
		if tx.Status != domain.TransactionStatusPendingApproval {
			return nil
		}

		tool, err := s.tools.GetByID(ctx, tx.ToolID)
		if err != nil {
			return fmt.Errorf("failed to load tool: %w", err)
		}
		toolName = tool.Name

		var message string
		if approve {
			tx.Status = domain.TransactionStatusApproved
			message = fmt.Sprintf("Your request for %s has been approved.", tool.Name)
		} else {
			tx.Status = domain.TransactionStatusRejected
			message = fmt.Sprintf("Your request for %s has been rejected.", tool.Name)
			if err := s.tools.UpdateStatus(ctx, tx.ToolID, domain.ToolStatusAvailable); err != nil {
				return fmt.Errorf("failed to release tool: %w", err)
			}
		}

		if err := s.transactions.Update(ctx, tx); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		note := &domain.Notification{
			UserID:  tx.UserID,
			Message: message,
			LinkURL: fmt.Sprintf("/transactions/%d", tx.ID),
		}
		if err := s.notifications.Create(ctx, note); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		transitioned = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		s.log.Info("transaction decided",
			"transaction_id", transactionID, "status", result.Status)
		s.sendDecisionEmail(ctx, result, toolName)
	}
	return result, nil
}

// sendDecisionEmail is best-effort; a mail failure never fails the decision.
func (s *transactionService) sendDecisionEmail(ctx context.Context, tx *domain.Transaction, toolName string) {
	if s.email == nil {
		return
	}
	user, err := s.users.GetByID(ctx, tx.UserID)
	if err != nil {
		s.log.Warn("failed to load user for decision email", "user_id", tx.UserID, "error", err)
		return
	}
	if tx.Status == domain.TransactionStatusApproved {
		err = s.email.SendTransactionApproved(ctx, user.Email, user.FullName, toolName)
	} else {
		err = s.email.SendTransactionRejected(ctx, user.Email, user.FullName, toolName)
	}
	if err != nil {
		s.log.Warn("failed to send decision email", "transaction_id", tx.ID, "error", err)
	}
}

// RecordPayment marks the PENDING payment of a rental transaction as PAID.
// Only the transaction's owner may pay, and a payment can only be recorded
// once.
func (s *transactionService) RecordPayment(ctx context.Context, userID, transactionID int32, method domain.PaymentMethod, proofURL string) (*domain.Payment, error) {
	switch method {
	case domain.PaymentMethodTransfer, domain.PaymentMethodEWallet, domain.PaymentMethodCash:
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	var paid *domain.Payment
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		tx, err := s.transactions.GetByID(ctx, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: transaction %d", ErrNotFound, transactionID)
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}
		if tx.UserID != userID {
			return fmt.Errorf("%w: transaction belongs to another user", ErrForbidden)
		}

		// A transaction without a payment row (lending) fails the same way
		// as one already paid: the payment is not in a payable state.
		payment, err := s.payments.GetByTransactionID(ctx, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: no payment for transaction %d", ErrInvalidState, transactionID)
			}
			return fmt.Errorf("failed to load payment: %w", err)
		}
		if payment.Status != domain.PaymentStatusPending {
			return fmt.Errorf("%w: payment is not pending", ErrInvalidState)
		}

		payment.Status = domain.PaymentStatusPaid
		payment.Method = method
		payment.ProofURL = proofURL
		if err := s.payments.Update(ctx, payment); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		paid = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment recorded",
		"payment_id", paid.ID, "transaction_id", transactionID, "method", method)
	return paid, nil
}

func (s *transactionService) ListMyTransactions(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *transactionService) ListAllTransactions(ctx context.Context, offset, limit int32) ([]domain.Transaction, error) {
	return s.transactions.ListAll(ctx, offset, limit)
}

// MarkOverdueTransactions flips every APPROVED transaction past its end date
// to OVERDUE and notifies each affected user. The flip and its notifications
// commit together.
func (s *transactionService) MarkOverdueTransactions(ctx context.Context) (int, error) {
	var count int
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		overdue, err := s.transactions.MarkOverdue(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark overdue transactions: %w", err)
		}
		for i := range overdue {
			tx := &overdue[i]
			note := &domain.Notification{
				UserID:  tx.UserID,
				Message: fmt.Sprintf("Your borrowed tool is overdue since %s. Please return it.", tx.EndDate.Format("2006-01-02")),
				LinkURL: fmt.Sprintf("/transactions/%d", tx.ID),
			}
			if err := s.notifications.Create(ctx, note); err != nil {
				return fmt.Errorf("failed to create overdue notification: %w", err)
			}
		}
		count = len(overdue)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.log.Info("transactions marked overdue", "count", count)
	}
	return count, nil
}
