package postgres

import (
	"context"
	"database/sql"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ToolUsageByMonth(ctx context.Context, year, month int) ([]domain.ToolUsageStat, error) {
	query := `SELECT t.name, COUNT(tx.id) AS transaction_count
	          FROM tools t
	          JOIN transactions tx ON tx.tool_id = t.id
	          WHERE EXTRACT(YEAR FROM tx.start_date) = $1
	            AND EXTRACT(MONTH FROM tx.start_date) = $2
	            AND tx.status = $3
	          GROUP BY t.name
	          ORDER BY transaction_count DESC`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, year, month, domain.TransactionStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.ToolUsageStat
	for rows.Next() {
		var s domain.ToolUsageStat
		if err := rows.Scan(&s.ToolName, &s.TransactionCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepository) RentalIncomeByMonth(ctx context.Context, year, month int) (int64, error) {
	query := `SELECT COALESCE(SUM(p.amount_cents), 0)
	          FROM payments p
	          JOIN transactions tx ON p.transaction_id = tx.id
	          WHERE EXTRACT(YEAR FROM tx.start_date) = $1
	            AND EXTRACT(MONTH FROM tx.start_date) = $2
	            AND p.status = $3
	            AND tx.transaction_type = $4`
	var total int64
	err := q(ctx, r.db).QueryRowContext(ctx, query, year, month,
		domain.PaymentStatusPaid, domain.TransactionTypeRental).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
