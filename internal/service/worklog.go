package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type workLogService struct {
	logs repository.WorkLogRepository
}

func NewWorkLogService(logs repository.WorkLogRepository) WorkLogService {
	return &workLogService{logs: logs}
}

func (s *workLogService) CreateWorkLog(ctx context.Context, log *domain.WorkLog) error {
	if strings.TrimSpace(log.Notes) == "" {
		return fmt.Errorf("%w: notes are required", ErrValidation)
	}
	if log.LogDate.IsZero() {
		log.LogDate = time.Now()
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create work log: %w", err)
	}
	return nil
}

func (s *workLogService) ListWorkLogs(ctx context.Context, userID int32, offset, limit int32) ([]domain.WorkLog, error) {
	return s.logs.ListByUser(ctx, userID, offset, limit)
}
