package service

import (
	"context"
	"errors"
	"fmt"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type chatService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
}

func NewChatService(messages repository.MessageRepository, users repository.UserRepository) ChatService {
	return &chatService{messages: messages, users: users}
}

// SaveMessage persists a chat message. Persistence happens before any
// real-time delivery, so a message is never delivered without being stored.
func (s *chatService) SaveMessage(ctx context.Context, senderID, receiverID int32, content, attachmentURL string) (*domain.Message, error) {
	if content == "" && attachmentURL == "" {
		return nil, fmt.Errorf("%w: message content is required", ErrValidation)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrValidation)
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, receiverID)
		}
		return nil, fmt.Errorf("failed to look up receiver: %w", err)
	}

	msg := &domain.Message{
		SenderID:      senderID,
		ReceiverID:    receiverID,
		Content:       content,
		AttachmentURL: attachmentURL,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return msg, nil
}

// History returns the full conversation between two users, both directions,
// oldest first.
func (s *chatService) History(ctx context.Context, userA, userB int32) ([]domain.Message, error) {
	return s.messages.History(ctx, userA, userB)
}
