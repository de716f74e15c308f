package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository"
)

var ErrNotificationNotFound = repository.ErrNotificationNotFound

// timeNow is swapped out by tests that pin the clock.
var timeNow = time.Now

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	FindByID(ctx context.Context, id string) (domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{
		repo: repo,
	}
}

func (s *NotificationService) Notify(ctx context.Context, userID, message, notificationType, link string) (domain.Notification, error) {
	created, err := s.repo.Create(ctx, domain.Notification{
		ID:        newID("notif"),
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		Link:      link,
		Read:      false,
		CreatedAt: timeNow(),
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUser -> %w", err)
	}

	return notifications, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountUnread -> %w", err)
	}

	return count, nil
}

// MarkRead flips one notification to read. A notification owned by someone
// else is reported as missing rather than revealed.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if notification.UserID != userID {
		return ErrNotificationNotFound
	}

	if err = s.repo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("s.repo.MarkRead -> %w", err)
	}

	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("s.repo.MarkAllRead -> %w", err)
	}

	return nil
}
