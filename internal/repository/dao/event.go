package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID string `gorm:"primaryKey"`

	SportType        string `gorm:"not null"`
	Date             string `gorm:"not null"`
	Time             string `gorm:"not null"`
	Location         string `gorm:"not null"`
	MaxParticipants  int    `gorm:"not null"`
	PerformanceLevel string `gorm:"not null"`
	Equipment        string
	Description      string

	// The organizer lives on the event row itself, so cancelling an
	// event removes the organizer link together with it.
	OrganizerEmail string `gorm:"index"`

	CreatedAt time.Time `gorm:"not null"`
}

// Participant rows reference events by ID only. There is no database-level
// foreign key on purpose: cancelling an event must leave its participant,
// interest and comment rows behind untouched.
type Participant struct {
	ID uint `gorm:"primaryKey"`

	EventID string `gorm:"index;not null"`
	Email   string `gorm:"not null"`
	Name    string `gorm:"not null"`

	JoinedAt time.Time `gorm:"not null"`
}

type Interest struct {
	ID uint `gorm:"primaryKey"`

	EventID string `gorm:"index;not null"`
	Email   string `gorm:"not null"`
	Name    string `gorm:"not null"`

	InterestedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindAll returns every event, newest first, matching the storage order
// of the original event feed.
func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByEvent(ctx context.Context, eventID string) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("joined_at ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("event_id = ?", eventID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ParticipantDAO) Exists(ctx context.Context, eventID, email string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("event_id = ? AND email = ?", eventID, email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, eventID, email string) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND email = ?", eventID, email).
		Delete(&Participant{})

	return result.Error
}

// FindEventIDs returns the IDs of every event the given email joined.
func (d *ParticipantDAO) FindEventIDs(ctx context.Context, email string) ([]string, error) {
	var eventIDs []string

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("email = ?", email).
		Pluck("event_id", &eventIDs)
	if result.Error != nil {
		return nil, result.Error
	}

	return eventIDs, nil
}

type InterestDAO struct {
	db *gorm.DB
}

func NewInterestDAO(db *gorm.DB) *InterestDAO {
	return &InterestDAO{
		db: db,
	}
}

func (d *InterestDAO) Insert(ctx context.Context, interest Interest) (Interest, error) {
	result := d.db.WithContext(ctx).Create(&interest)
	if result.Error != nil {
		return Interest{}, result.Error
	}

	return interest, nil
}

func (d *InterestDAO) FindByEvent(ctx context.Context, eventID string) ([]Interest, error) {
	var interests []Interest

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("interested_at ASC").
		Find(&interests)
	if result.Error != nil {
		return nil, result.Error
	}

	return interests, nil
}

func (d *InterestDAO) Exists(ctx context.Context, eventID, email string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Interest{}).
		Where("event_id = ? AND email = ?", eventID, email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *InterestDAO) Delete(ctx context.Context, eventID, email string) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND email = ?", eventID, email).
		Delete(&Interest{})

	return result.Error
}
