package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository"
	"bengkel-backend/internal/security"
)

type authService struct {
	users  repository.UserRepository
	tokens security.TokenManager
	log    *slog.Logger
}

func NewAuthService(users repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    logger.WithComponent("auth-service"),
	}
}

func (s *authService) Register(ctx context.Context, email, fullName string, role domain.UserRole, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if !domain.ValidUserRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.Approved() {
		return "", nil, ErrNotApproved
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info("user logged in", "user_id", user.ID)
	return token, user, nil
}
