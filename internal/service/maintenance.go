package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository"
)

type maintenanceService struct {
	txm           repository.TxManager
	tools         repository.ToolRepository
	reports       repository.MaintenanceRepository
	notifications repository.NotificationRepository
	log           *slog.Logger
}

func NewMaintenanceService(
	txm repository.TxManager,
	tools repository.ToolRepository,
	reports repository.MaintenanceRepository,
	notifications repository.NotificationRepository,
) MaintenanceService {
	return &maintenanceService{
		txm:           txm,
		tools:         tools,
		reports:       reports,
		notifications: notifications,
		log:           logger.WithComponent("maintenance-service"),
	}
}

// CreateReport opens a maintenance report and takes the tool out of
// circulation. The report row and the tool status change commit together.
func (s *maintenanceService) CreateReport(ctx context.Context, toolID, reporterID int32, description string) (*domain.MaintenanceReport, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	var created *domain.MaintenanceReport
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.tools.GetByIDForUpdate(ctx, toolID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: tool %d", ErrNotFound, toolID)
			}
			return fmt.Errorf("failed to load tool: %w", err)
		}

		report := &domain.MaintenanceReport{
			ToolID:      toolID,
			ReporterID:  reporterID,
			Description: description,
			Status:      domain.MaintenanceStatusOpen,
		}
		if err := s.reports.Create(ctx, report); err != nil {
			return fmt.Errorf("failed to create maintenance report: %w", err)
		}

		if err := s.tools.UpdateStatus(ctx, toolID, domain.ToolStatusUnderMaintenance); err != nil {
			return fmt.Errorf("failed to update tool status: %w", err)
		}

		created = report
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("maintenance report created",
		"report_id", created.ID, "tool_id", toolID, "reporter_id", reporterID)
	return created, nil
}

func (s *maintenanceService) ListReports(ctx context.Context, offset, limit int32) ([]domain.MaintenanceReport, error) {
	return s.reports.ListAll(ctx, offset, limit)
}

// AssignTechnician moves an OPEN report to IN_PROGRESS and notifies the
// assignee. Assigning a report in any other state is a no-op that returns it
// unchanged.
func (s *maintenanceService) AssignTechnician(ctx context.Context, reportID, technicianID int32) (*domain.MaintenanceReport, error) {
	var result *domain.MaintenanceReport
	transitioned := false

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		report, err := s.reports.GetByID(ctx, reportID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: maintenance report %d", ErrNotFound, reportID)
			}
			return fmt.Errorf("failed to load maintenance report: %w", err)
		}

		result = report
		if report.Status != domain.MaintenanceStatusOpen {
			return nil
		}

		report.AssigneeID = &technicianID
		report.Status = domain.MaintenanceStatusInProgress
		if err := s.reports.Update(ctx, report); err != nil {
			return fmt.Errorf("failed to update maintenance report: %w", err)
		}

		note := &domain.Notification{
			UserID:  technicianID,
			Message: fmt.Sprintf("You have been assigned to maintenance report #%d.", report.ID),
			LinkURL: fmt.Sprintf("/maintenance/%d", report.ID),
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
		s.log.Info("technician assigned",
			"report_id", reportID, "technician_id", technicianID)
	}
	return result, nil
}

// ResolveReport moves an IN_PROGRESS report to RESOLVED, returns the tool to
// AVAILABLE and notifies the reporter. Resolving a report in any other state,
// including one still OPEN, is a no-op that returns it unchanged.
func (s *maintenanceService) ResolveReport(ctx context.Context, reportID int32) (*domain.MaintenanceReport, error) {
	var result *domain.MaintenanceReport
	transitioned := false

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		report, err := s.reports.GetByID(ctx, reportID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: maintenance report %d", ErrNotFound, reportID)
			}
			return fmt.Errorf("failed to load maintenance report: %w", err)
		}

		result = report
		if report.Status != domain.MaintenanceStatusInProgress {
			return nil
		}

		now := time.Now()
		report.Status = domain.MaintenanceStatusResolved
		report.ResolvedOn = &now
		if err := s.reports.Update(ctx, report); err != nil {
			return fmt.Errorf("failed to update maintenance report: %w", err)
		}

		if err := s.tools.UpdateStatus(ctx, report.ToolID, domain.ToolStatusAvailable); err != nil {
			return fmt.Errorf("failed to restore tool status: %w", err)
		}

		note := &domain.Notification{
			UserID:  report.ReporterID,
			Message: fmt.Sprintf("Maintenance report #%d has been resolved.", report.ID),
			LinkURL: fmt.Sprintf("/maintenance/%d", report.ID),
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
		s.log.Info("maintenance report resolved", "report_id", reportID)
	}
	return result, nil
}
