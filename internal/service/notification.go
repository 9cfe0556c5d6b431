package service

import (
	"context"
	"errors"
	"fmt"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int32, offset, limit int32) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, offset, limit)
}

// MarkRead only touches notifications owned by userID; a notification that
// belongs to someone else is indistinguishable from one that does not exist.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID int32) (*domain.Notification, error) {
	note, err := s.notifications.MarkRead(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: notification %d", ErrNotFound, notificationID)
		}
		return nil, err
	}
	return note, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int32) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
