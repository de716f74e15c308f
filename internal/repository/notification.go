package repository

import (
	"context"
	"fmt"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository/dao"
)

var ErrNotificationNotFound = dao.ErrNotificationNotFound

type NotificationDAO interface {
	Insert(ctx context.Context, notification dao.Notification) (dao.Notification, error)
	TrimToNewest(ctx context.Context, keep int) error
	FindByUser(ctx context.Context, userID string) ([]dao.Notification, error)
	FindByID(ctx context.Context, id string) (dao.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationRepository struct {
	dao NotificationDAO
}

func NewNotificationRepository(dao NotificationDAO) *NotificationRepository {
	return &NotificationRepository{
		dao: dao,
	}
}

// Create inserts the notification and trims the table to the newest
// entries across all recipients.
func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	created, err := r.dao.Insert(ctx, dao.Notification{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Type:      notification.Type,
		Link:      notification.Link,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	if err = r.dao.TrimToNewest(ctx, domain.MaxStoredNotifications); err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.TrimToNewest -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	found, err := r.dao.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUser -> %w", err)
	}

	notifications := make([]domain.Notification, 0, len(found))
	for _, notification := range found {
		notifications = append(notifications, r.daoToDomain(notification))
	}

	return notifications, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (domain.Notification, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := r.dao.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountUnread -> %w", err)
	}

	return int(count), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	if err := r.dao.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("r.dao.MarkRead -> %w", err)
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	if err := r.dao.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("r.dao.MarkAllRead -> %w", err)
	}

	return nil
}

func (r *NotificationRepository) daoToDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Type:      n.Type,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
