package repository

import (
	"context"
	"fmt"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id string) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	Delete(ctx context.Context, id string) error
}

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByEvent(ctx context.Context, eventID string) ([]dao.Participant, error)
	CountByEvent(ctx context.Context, eventID string) (int64, error)
	Exists(ctx context.Context, eventID, email string) (bool, error)
	Delete(ctx context.Context, eventID, email string) error
	FindEventIDs(ctx context.Context, email string) ([]string, error)
}

type InterestDAO interface {
	Insert(ctx context.Context, interest dao.Interest) (dao.Interest, error)
	FindByEvent(ctx context.Context, eventID string) ([]dao.Interest, error)
	Exists(ctx context.Context, eventID, email string) (bool, error)
	Delete(ctx context.Context, eventID, email string) error
}

// EventRepository covers events together with their participant and
// interest rows, which have no life of their own outside an event.
type EventRepository struct {
	events       EventDAO
	participants ParticipantDAO
	interests    InterestDAO
}

func NewEventRepository(events EventDAO, participants ParticipantDAO, interests InterestDAO) *EventRepository {
	return &EventRepository{
		events:       events,
		participants: participants,
		interests:    interests,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.events.Insert(ctx, r.eventToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.events.Insert -> %w", err)
	}

	return r.eventToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.events.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.events.FindByID -> %w", err)
	}

	return r.eventToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.events.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, event := range found {
		events = append(events, r.eventToDomain(event))
	}

	return events, nil
}

// Delete removes the event row only. Participant, interest and comment
// rows for the event deliberately stay behind.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := r.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.events.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.participants.Insert(ctx, dao.Participant{
		EventID:  participant.EventID,
		Email:    participant.Email,
		Name:     participant.Name,
		JoinedAt: participant.JoinedAt,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.participants.Insert -> %w", err)
	}

	return r.participantToDomain(created), nil
}

func (r *EventRepository) FindParticipants(ctx context.Context, eventID string) ([]domain.Participant, error) {
	found, err := r.participants.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.participants.FindByEvent -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, participant := range found {
		participants = append(participants, r.participantToDomain(participant))
	}

	return participants, nil
}

func (r *EventRepository) CountParticipants(ctx context.Context, eventID string) (int, error) {
	count, err := r.participants.CountByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.participants.CountByEvent -> %w", err)
	}

	return int(count), nil
}

func (r *EventRepository) IsParticipant(ctx context.Context, eventID, email string) (bool, error) {
	exists, err := r.participants.Exists(ctx, eventID, email)
	if err != nil {
		return false, fmt.Errorf("r.participants.Exists -> %w", err)
	}

	return exists, nil
}

func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, email string) error {
	if err := r.participants.Delete(ctx, eventID, email); err != nil {
		return fmt.Errorf("r.participants.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) FindJoinedEventIDs(ctx context.Context, email string) ([]string, error) {
	eventIDs, err := r.participants.FindEventIDs(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.participants.FindEventIDs -> %w", err)
	}

	return eventIDs, nil
}

func (r *EventRepository) AddInterest(ctx context.Context, interest domain.Interest) (domain.Interest, error) {
	created, err := r.interests.Insert(ctx, dao.Interest{
		EventID:      interest.EventID,
		Email:        interest.Email,
		Name:         interest.Name,
		InterestedAt: interest.InterestedAt,
	})
	if err != nil {
		return domain.Interest{}, fmt.Errorf("r.interests.Insert -> %w", err)
	}

	return r.interestToDomain(created), nil
}

func (r *EventRepository) FindInterests(ctx context.Context, eventID string) ([]domain.Interest, error) {
	found, err := r.interests.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.interests.FindByEvent -> %w", err)
	}

	interests := make([]domain.Interest, 0, len(found))
	for _, interest := range found {
		interests = append(interests, r.interestToDomain(interest))
	}

	return interests, nil
}

func (r *EventRepository) IsInterested(ctx context.Context, eventID, email string) (bool, error) {
	exists, err := r.interests.Exists(ctx, eventID, email)
	if err != nil {
		return false, fmt.Errorf("r.interests.Exists -> %w", err)
	}

	return exists, nil
}

func (r *EventRepository) RemoveInterest(ctx context.Context, eventID, email string) error {
	if err := r.interests.Delete(ctx, eventID, email); err != nil {
		return fmt.Errorf("r.interests.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) eventToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:               e.ID,
		SportType:        e.SportType,
		Date:             e.Date,
		Time:             e.Time,
		Location:         e.Location,
		MaxParticipants:  e.MaxParticipants,
		PerformanceLevel: e.PerformanceLevel,
		Equipment:        e.Equipment,
		Description:      e.Description,
		OrganizerEmail:   e.OrganizerEmail,
		CreatedAt:        e.CreatedAt,
	}
}

func (r *EventRepository) eventToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:               e.ID,
		SportType:        e.SportType,
		Date:             e.Date,
		Time:             e.Time,
		Location:         e.Location,
		MaxParticipants:  e.MaxParticipants,
		PerformanceLevel: e.PerformanceLevel,
		Equipment:        e.Equipment,
		Description:      e.Description,
		OrganizerEmail:   e.OrganizerEmail,
		CreatedAt:        e.CreatedAt,
	}
}

func (r *EventRepository) participantToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		EventID:  p.EventID,
		Email:    p.Email,
		Name:     p.Name,
		JoinedAt: p.JoinedAt,
	}
}

func (r *EventRepository) interestToDomain(i dao.Interest) domain.Interest {
	return domain.Interest{
		EventID:      i.EventID,
		Email:        i.Email,
		Name:         i.Name,
		InterestedAt: i.InterestedAt,
	}
}
