package domain

import "time"

const (
	NotificationInfo              = "info"
	NotificationEventCancelled    = "event_cancelled"
	NotificationParticipantJoined = "participant_joined"
)

// MaxStoredNotifications caps the notifications table at the newest
// entries regardless of recipient. A single busy user can therefore
// evict another user's notifications; callers rely on this behavior.
const MaxStoredNotifications = 50

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
