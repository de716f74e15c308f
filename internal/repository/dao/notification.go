package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID string `gorm:"primaryKey"`

	// UserID holds the recipient's email address.
	UserID  string `gorm:"index;not null"`
	Message string `gorm:"not null"`
	Type    string `gorm:"not null"`
	Link    string
	Read    bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		db: db,
	}
}

func (d *NotificationDAO) Insert(ctx context.Context, notification Notification) (Notification, error) {
	result := d.db.WithContext(ctx).Create(&notification)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return notification, nil
}

// TrimToNewest deletes everything but the `keep` newest notifications,
// across all recipients.
func (d *NotificationDAO) TrimToNewest(ctx context.Context, keep int) error {
	newest := d.db.
		Model(&Notification{}).
		Select("id").
		Order("created_at DESC").
		Limit(keep)

	result := d.db.WithContext(ctx).
		Where("id NOT IN (?)", newest).
		Delete(&Notification{})

	return result.Error
}

func (d *NotificationDAO) FindByUser(ctx context.Context, userID string) ([]Notification, error) {
	var notifications []Notification

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

func (d *NotificationDAO) FindByID(ctx context.Context, id string) (Notification, error) {
	var notification Notification

	result := d.db.WithContext(ctx).First(&notification, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Notification{}, ErrNotificationNotFound
		}

		return Notification{}, result.Error
	}

	return notification, nil
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *NotificationDAO) MarkRead(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID string) error {
	result := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)

	return result.Error
}
