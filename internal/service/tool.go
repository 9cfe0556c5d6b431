package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository"
)

type toolService struct {
	tools repository.ToolRepository
	log   *slog.Logger
}

func NewToolService(tools repository.ToolRepository) ToolService {
	return &toolService{
		tools: tools,
		log:   logger.WithComponent("tool-service"),
	}
}

func validateTool(tool *domain.Tool) error {
	if strings.TrimSpace(tool.Name) == "" {
		return fmt.Errorf("%w: tool name is required", ErrValidation)
	}
	switch tool.Category {
	case domain.ToolCategoryTillage, domain.ToolCategoryHarvest, domain.ToolCategoryPump,
		domain.ToolCategoryTransport, domain.ToolCategoryWorkshopTools, domain.ToolCategoryOther:
	default:
		return fmt.Errorf("%w: unknown category %q", ErrValidation, tool.Category)
	}
	if tool.PricePerDayCents != nil && *tool.PricePerDayCents < 0 {
		return fmt.Errorf("%w: price per day must not be negative", ErrValidation)
	}
	return nil
}

func (s *toolService) CreateTool(ctx context.Context, tool *domain.Tool) error {
	if err := validateTool(tool); err != nil {
		return err
	}
	if tool.Status == "" {
		tool.Status = domain.ToolStatusAvailable
	}
	if err := s.tools.Create(ctx, tool); err != nil {
		return fmt.Errorf("failed to create tool: %w", err)
	}
	s.log.Info("tool created", "tool_id", tool.ID, "name", tool.Name)
	return nil
}

func (s *toolService) GetTool(ctx context.Context, id int32) (*domain.Tool, error) {
	tool, err := s.tools.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: tool %d", ErrNotFound, id)
		}
		return nil, err
	}
	return tool, nil
}

func (s *toolService) ListTools(ctx context.Context, offset, limit int32) ([]domain.Tool, error) {
	return s.tools.List(ctx, offset, limit)
}

func (s *toolService) UpdateTool(ctx context.Context, tool *domain.Tool) error {
	if err := validateTool(tool); err != nil {
		return err
	}
	if err := s.tools.Update(ctx, tool); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: tool %d", ErrNotFound, tool.ID)
		}
		return fmt.Errorf("failed to update tool: %w", err)
	}
	return nil
}

func (s *toolService) DeleteTool(ctx context.Context, id int32) error {
	if err := s.tools.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: tool %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	s.log.Info("tool deleted", "tool_id", id)
	return nil
}
