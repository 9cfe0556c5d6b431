package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository"
)

type userService struct {
	users repository.UserRepository
	log   *slog.Logger
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{
		users: users,
		log:   logger.WithComponent("user-service"),
	}
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int32) ([]domain.User, error) {
	return s.users.List(ctx, offset, limit)
}

func (s *userService) GetUser(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

// ApproveUser is idempotent: approving an already-approved user keeps the
// original approval timestamp.
func (s *userService) ApproveUser(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.users.Approve(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to approve user: %w", err)
	}
	s.log.Info("user approved", "user_id", userID)
	return user, nil
}
