package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository"
)

var (
	ErrEventNotFound = repository.ErrEventNotFound
	ErrEventFull     = errors.New("no spots left for this event")
	ErrAlreadyJoined = errors.New("already joined this event")
	ErrNotOrganizer  = errors.New("only the organizer can cancel an event")
)

// RecentEventsLimit bounds the creation-confirmation feed.
const RecentEventsLimit = 5

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id string) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	Delete(ctx context.Context, id string) error

	AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindParticipants(ctx context.Context, eventID string) ([]domain.Participant, error)
	CountParticipants(ctx context.Context, eventID string) (int, error)
	IsParticipant(ctx context.Context, eventID, email string) (bool, error)
	RemoveParticipant(ctx context.Context, eventID, email string) error
	FindJoinedEventIDs(ctx context.Context, email string) ([]string, error)

	AddInterest(ctx context.Context, interest domain.Interest) (domain.Interest, error)
	FindInterests(ctx context.Context, eventID string) ([]domain.Interest, error)
	IsInterested(ctx context.Context, eventID, email string) (bool, error)
	RemoveInterest(ctx context.Context, eventID, email string) error
}

// Notifier delivers in-app notifications. Delivery problems never fail the
// operation that triggered them; they are logged and dropped.
type Notifier interface {
	Notify(ctx context.Context, userID, message, notificationType, link string) (domain.Notification, error)
}

type EventService struct {
	repo     EventRepository
	notifier Notifier

	now func() time.Time
}

func NewEventService(repo EventRepository, notifier Notifier) *EventService {
	return &EventService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, organizer domain.User) (domain.Event, error) {
	event.ID = newID("evt")
	event.OrganizerEmail = organizer.Email
	event.CreatedAt = s.now()

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.FilterEvents(events, filter), nil
}

// RecentEvents returns the newest creations, capped at RecentEventsLimit.
func (s *EventService) RecentEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	if len(events) > RecentEventsLimit {
		events = events[:RecentEventsLimit]
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// EventDetail assembles everything the detail page shows for one event.
func (s *EventService) EventDetail(ctx context.Context, id string) (domain.Event, []domain.Participant, []domain.Interest, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, nil, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	participants, err := s.repo.FindParticipants(ctx, id)
	if err != nil {
		return domain.Event{}, nil, nil, fmt.Errorf("s.repo.FindParticipants -> %w", err)
	}

	interests, err := s.repo.FindInterests(ctx, id)
	if err != nil {
		return domain.Event{}, nil, nil, fmt.Errorf("s.repo.FindInterests -> %w", err)
	}

	return event, participants, interests, nil
}

// Join adds the user to the event's participant list. Membership and the
// spot limit are checked by reading the current list right before the
// insert, matching the original's read-then-write sequence.
func (s *EventService) Join(ctx context.Context, eventID string, user domain.User) (domain.Participant, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	joined, err := s.repo.IsParticipant(ctx, eventID, user.Email)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.IsParticipant -> %w", err)
	}
	if joined {
		return domain.Participant{}, ErrAlreadyJoined
	}

	count, err := s.repo.CountParticipants(ctx, eventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.CountParticipants -> %w", err)
	}
	if count >= event.MaxParticipants {
		return domain.Participant{}, ErrEventFull
	}

	participant, err := s.repo.AddParticipant(ctx, domain.Participant{
		EventID:  eventID,
		Email:    user.Email,
		Name:     user.DisplayName(),
		JoinedAt: s.now(),
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.AddParticipant -> %w", err)
	}

	if event.OrganizerEmail != "" && event.OrganizerEmail != user.Email {
		message := fmt.Sprintf("%s joined your %s event on %s", participant.Name, event.SportType, event.Date)
		if _, err = s.notifier.Notify(ctx, event.OrganizerEmail, message, domain.NotificationParticipantJoined, "/events/"+event.ID); err != nil {
			zap.L().Warn("failed to notify organizer about a new participant",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
		}
	}

	return participant, nil
}

func (s *EventService) Leave(ctx context.Context, eventID, email string) error {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.RemoveParticipant(ctx, eventID, email); err != nil {
		return fmt.Errorf("s.repo.RemoveParticipant -> %w", err)
	}

	return nil
}

// ToggleInterest flips the user's interest mark and reports the resulting
// state, so callers never need to diff before and after.
func (s *EventService) ToggleInterest(ctx context.Context, eventID string, user domain.User) (bool, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return false, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	interested, err := s.repo.IsInterested(ctx, eventID, user.Email)
	if err != nil {
		return false, fmt.Errorf("s.repo.IsInterested -> %w", err)
	}

	if interested {
		if err = s.repo.RemoveInterest(ctx, eventID, user.Email); err != nil {
			return false, fmt.Errorf("s.repo.RemoveInterest -> %w", err)
		}

		return false, nil
	}

	if _, err = s.repo.AddInterest(ctx, domain.Interest{
		EventID:      eventID,
		Email:        user.Email,
		Name:         user.DisplayName(),
		InterestedAt: s.now(),
	}); err != nil {
		return false, fmt.Errorf("s.repo.AddInterest -> %w", err)
	}

	return true, nil
}

// Cancel deletes the event and tells every participant. Participant,
// interest and comment rows are left behind on purpose; see DESIGN.md.
func (s *EventService) Cancel(ctx context.Context, eventID, requesterEmail string) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.OrganizerEmail != requesterEmail {
		return ErrNotOrganizer
	}

	participants, err := s.repo.FindParticipants(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.repo.FindParticipants -> %w", err)
	}

	if err = s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	message := fmt.Sprintf("The %s event on %s at %s was cancelled by the organizer", event.SportType, event.Date, event.Location)
	for _, participant := range participants {
		if _, err = s.notifier.Notify(ctx, participant.Email, message, domain.NotificationEventCancelled, ""); err != nil {
			zap.L().Warn("failed to notify participant about a cancelled event",
				zap.String("event_id", event.ID),
				zap.String("participant", participant.Email),
				zap.Error(err),
			)
		}
	}

	return nil
}

// OrganizedEvents lists events organized by the given email, newest first.
func (s *EventService) OrganizedEvents(ctx context.Context, email string) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	organized := make([]domain.Event, 0)
	for _, event := range events {
		if event.OrganizerEmail == email {
			organized = append(organized, event)
		}
	}

	return organized, nil
}

// ParticipatingEvents lists events whose participant list contains the
// given email.
func (s *EventService) ParticipatingEvents(ctx context.Context, email string) ([]domain.Event, error) {
	joinedIDs, err := s.repo.FindJoinedEventIDs(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindJoinedEventIDs -> %w", err)
	}

	joined := make(map[string]bool, len(joinedIDs))
	for _, id := range joinedIDs {
		joined[id] = true
	}

	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	participating := make([]domain.Event, 0)
	for _, event := range events {
		if joined[event.ID] {
			participating = append(participating, event)
		}
	}

	return participating, nil
}

// HistoryEvents lists past events the given email organized or joined.
func (s *EventService) HistoryEvents(ctx context.Context, email string) ([]domain.Event, error) {
	joinedIDs, err := s.repo.FindJoinedEventIDs(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindJoinedEventIDs -> %w", err)
	}

	joined := make(map[string]bool, len(joinedIDs))
	for _, id := range joinedIDs {
		joined[id] = true
	}

	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	now := s.now()
	history := make([]domain.Event, 0)
	for _, event := range events {
		if !event.IsPast(now) {
			continue
		}
		if event.OrganizerEmail == email || joined[event.ID] {
			history = append(history, event)
		}
	}

	return history, nil
}
