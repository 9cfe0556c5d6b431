package jobs

import (
	"context"

	"bengkel-backend/internal/logger"
)

// MarkOverdueTransactions flips APPROVED transactions past their end date to
// OVERDUE and notifies the affected users.
func (jr *JobRunner) MarkOverdueTransactions() {
	jr.runWithRecovery("MarkOverdueTransactions", func() {
		count, err := jr.transactions.MarkOverdueTransactions(context.Background())
		if err != nil {
			logger.Error("failed to mark overdue transactions", "error", err)
			return
		}
		logger.Info("marked transactions as overdue", "count", count)
	})
}
