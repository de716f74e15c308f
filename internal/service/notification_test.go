package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository"
)

// fakeNotificationRepository keeps notifications newest first and trims
// the shared list to domain.MaxStoredNotifications, like the real one.
type fakeNotificationRepository struct {
	notifications []domain.Notification
}

func (f *fakeNotificationRepository) Create(_ context.Context, notification domain.Notification) (domain.Notification, error) {
	f.notifications = append([]domain.Notification{notification}, f.notifications...)
	if len(f.notifications) > domain.MaxStoredNotifications {
		f.notifications = f.notifications[:domain.MaxStoredNotifications]
	}
	return notification, nil
}

func (f *fakeNotificationRepository) FindByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	out := make([]domain.Notification, 0)
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepository) FindByID(_ context.Context, id string) (domain.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, repository.ErrNotificationNotFound
}

func (f *fakeNotificationRepository) CountUnread(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepository) MarkRead(_ context.Context, id string) error {
	for i, n := range f.notifications {
		if n.ID == id {
			f.notifications[i].Read = true
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (f *fakeNotificationRepository) MarkAllRead(_ context.Context, userID string) error {
	for i, n := range f.notifications {
		if n.UserID == userID {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func TestNotificationService_Notify(t *testing.T) {
	repo := &fakeNotificationRepository{}
	svc := NewNotificationService(repo)

	created, err := svc.Notify(context.Background(), "ana@example.com", "salut", domain.NotificationInfo, "/events/evt_1")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "notif_"))
	assert.False(t, created.Read)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestNotificationService_CapEvictsAcrossUsers(t *testing.T) {
	repo := &fakeNotificationRepository{}
	svc := NewNotificationService(repo)

	first, err := svc.Notify(context.Background(), "ana@example.com", "salut", domain.NotificationInfo, "")
	require.NoError(t, err)

	// A burst addressed to one user pushes the whole table past the cap.
	for i := 0; i < domain.MaxStoredNotifications; i++ {
		_, err = svc.Notify(context.Background(), "bogdan@example.com", "spam", domain.NotificationInfo, "")
		require.NoError(t, err)
	}

	anas, err := svc.ListForUser(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Empty(t, anas, "the cap is shared, so another user's burst evicts older notifications")

	_, err = repo.FindByID(context.Background(), first.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	repo := &fakeNotificationRepository{}
	svc := NewNotificationService(repo)

	first, err := svc.Notify(context.Background(), "ana@example.com", "unu", domain.NotificationInfo, "")
	require.NoError(t, err)
	_, err = svc.Notify(context.Background(), "ana@example.com", "doi", domain.NotificationInfo, "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(context.Background(), first.ID, "ana@example.com"))

	count, err := svc.UnreadCount(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.MarkAllRead(context.Background(), "ana@example.com"))

	count, err = svc.UnreadCount(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationService_MarkRead_ForeignNotification(t *testing.T) {
	repo := &fakeNotificationRepository{}
	svc := NewNotificationService(repo)

	created, err := svc.Notify(context.Background(), "ana@example.com", "salut", domain.NotificationInfo, "")
	require.NoError(t, err)

	err = svc.MarkRead(context.Background(), created.ID, "bogdan@example.com")

	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.False(t, repo.notifications[0].Read)
}
