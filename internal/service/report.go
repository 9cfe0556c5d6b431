package service

import (
	"context"
	"fmt"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type reportService struct {
	reports repository.ReportRepository
}

func NewReportService(reports repository.ReportRepository) ReportService {
	return &reportService{reports: reports}
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrValidation)
	}
	if year < 2000 || year > 2200 {
		return fmt.Errorf("%w: year out of range", ErrValidation)
	}
	return nil
}

func (s *reportService) MonthlyToolUsage(ctx context.Context, year, month int) ([]domain.ToolUsageStat, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	return s.reports.ToolUsageByMonth(ctx, year, month)
}

func (s *reportService) MonthlyFinancial(ctx context.Context, year, month int) (*domain.FinancialReport, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	total, err := s.reports.RentalIncomeByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return &domain.FinancialReport{
		Year:             year,
		Month:            month,
		TotalIncomeCents: total,
	}, nil
}
