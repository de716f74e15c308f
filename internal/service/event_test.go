package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository"
)

// fakeEventRepository is an in-memory stand-in for the gorm-backed
// repository. Events are kept newest first, matching FindAll's ordering.
type fakeEventRepository struct {
	events       []domain.Event
	participants []domain.Participant
	interests    []domain.Interest
}

func (f *fakeEventRepository) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	f.events = append([]domain.Event{event}, f.events...)
	return event, nil
}

func (f *fakeEventRepository) FindByID(_ context.Context, id string) (domain.Event, error) {
	for _, event := range f.events {
		if event.ID == id {
			return event, nil
		}
	}
	return domain.Event{}, repository.ErrEventNotFound
}

func (f *fakeEventRepository) FindAll(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeEventRepository) Delete(_ context.Context, id string) error {
	for i, event := range f.events {
		if event.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return repository.ErrEventNotFound
}

func (f *fakeEventRepository) AddParticipant(_ context.Context, participant domain.Participant) (domain.Participant, error) {
	f.participants = append(f.participants, participant)
	return participant, nil
}

func (f *fakeEventRepository) FindParticipants(_ context.Context, eventID string) ([]domain.Participant, error) {
	out := make([]domain.Participant, 0)
	for _, p := range f.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeEventRepository) CountParticipants(ctx context.Context, eventID string) (int, error) {
	participants, _ := f.FindParticipants(ctx, eventID)
	return len(participants), nil
}

func (f *fakeEventRepository) IsParticipant(_ context.Context, eventID, email string) (bool, error) {
	for _, p := range f.participants {
		if p.EventID == eventID && p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepository) RemoveParticipant(_ context.Context, eventID, email string) error {
	for i, p := range f.participants {
		if p.EventID == eventID && p.Email == email {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeEventRepository) FindJoinedEventIDs(_ context.Context, email string) ([]string, error) {
	ids := make([]string, 0)
	for _, p := range f.participants {
		if p.Email == email {
			ids = append(ids, p.EventID)
		}
	}
	return ids, nil
}

func (f *fakeEventRepository) AddInterest(_ context.Context, interest domain.Interest) (domain.Interest, error) {
	f.interests = append(f.interests, interest)
	return interest, nil
}

func (f *fakeEventRepository) FindInterests(_ context.Context, eventID string) ([]domain.Interest, error) {
	out := make([]domain.Interest, 0)
	for _, i := range f.interests {
		if i.EventID == eventID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeEventRepository) IsInterested(_ context.Context, eventID, email string) (bool, error) {
	for _, i := range f.interests {
		if i.EventID == eventID && i.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepository) RemoveInterest(_ context.Context, eventID, email string) error {
	for idx, i := range f.interests {
		if i.EventID == eventID && i.Email == email {
			f.interests = append(f.interests[:idx], f.interests[idx+1:]...)
			return nil
		}
	}
	return nil
}

type sentNotification struct {
	userID  string
	message string
	kind    string
	link    string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(_ context.Context, userID, message, notificationType, link string) (domain.Notification, error) {
	f.sent = append(f.sent, sentNotification{userID: userID, message: message, kind: notificationType, link: link})
	return domain.Notification{UserID: userID, Message: message, Type: notificationType, Link: link}, nil
}

func newTestEventService(repo *fakeEventRepository, notifier *fakeNotifier) *EventService {
	svc := NewEventService(repo, notifier)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func TestEventService_CreateEvent(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	organizer := domain.User{ID: 1, Email: "ana@example.com", Name: "Ana"}
	created, err := svc.CreateEvent(context.Background(), domain.Event{
		SportType:       "Fotbal",
		Date:            "2025-07-01",
		Time:            "18:00",
		Location:        "Parc Herastrau",
		MaxParticipants: 10,
	}, organizer)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "evt_"))
	assert.Equal(t, "ana@example.com", created.OrganizerEmail)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, repo.events, 1)
}

func TestEventService_RecentEvents_Capped(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	for i := 0; i < RecentEventsLimit+3; i++ {
		_, err := svc.CreateEvent(context.Background(), domain.Event{SportType: "Fotbal"}, domain.User{Email: "ana@example.com"})
		require.NoError(t, err)
	}

	recent, err := svc.RecentEvents(context.Background())

	require.NoError(t, err)
	assert.Len(t, recent, RecentEventsLimit)
	// Newest creation comes first.
	assert.Equal(t, repo.events[0].ID, recent[0].ID)
}

func TestEventService_Join(t *testing.T) {
	repo := &fakeEventRepository{}
	notifier := &fakeNotifier{}
	svc := newTestEventService(repo, notifier)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		SportType:       "Fotbal",
		Date:            "2025-07-01",
		Location:        "Parc Herastrau",
		MaxParticipants: 2,
	}, domain.User{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)

	participant, err := svc.Join(context.Background(), event.ID, domain.User{Email: "bogdan@example.com", Name: "Bogdan"})

	require.NoError(t, err)
	assert.Equal(t, "Bogdan", participant.Name)
	assert.Equal(t, event.ID, participant.EventID)

	// Organizer gets notified about the new participant.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "ana@example.com", notifier.sent[0].userID)
	assert.Equal(t, domain.NotificationParticipantJoined, notifier.sent[0].kind)
	assert.Equal(t, "/events/"+event.ID, notifier.sent[0].link)
	assert.Contains(t, notifier.sent[0].message, "Bogdan")
}

func TestEventService_Join_AlreadyJoined(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	event, err := svc.CreateEvent(context.Background(), domain.Event{MaxParticipants: 5}, domain.User{Email: "ana@example.com"})
	require.NoError(t, err)

	user := domain.User{Email: "bogdan@example.com"}
	_, err = svc.Join(context.Background(), event.ID, user)
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), event.ID, user)

	assert.ErrorIs(t, err, ErrAlreadyJoined)
}

func TestEventService_Join_Full(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		SportType:       "Fotbal",
		Location:        "Parc",
		MaxParticipants: 2,
	}, domain.User{Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), event.ID, domain.User{Email: "bogdan@example.com"})
	require.NoError(t, err)
	_, err = svc.Join(context.Background(), event.ID, domain.User{Email: "cristina@example.com"})
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), event.ID, domain.User{Email: "dan@example.com"})

	assert.ErrorIs(t, err, ErrEventFull)
}

func TestEventService_Join_UnknownEvent(t *testing.T) {
	svc := newTestEventService(&fakeEventRepository{}, &fakeNotifier{})

	_, err := svc.Join(context.Background(), "evt_missing", domain.User{Email: "ana@example.com"})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_LeaveThenRejoin(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	event, err := svc.CreateEvent(context.Background(), domain.Event{MaxParticipants: 2}, domain.User{Email: "ana@example.com"})
	require.NoError(t, err)

	user := domain.User{Email: "bogdan@example.com"}
	_, err = svc.Join(context.Background(), event.ID, user)
	require.NoError(t, err)

	require.NoError(t, svc.Leave(context.Background(), event.ID, user.Email))

	_, err = svc.Join(context.Background(), event.ID, user)
	require.NoError(t, err, "a freed spot can be taken again")
}

func TestEventService_ToggleInterest_Involution(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	event, err := svc.CreateEvent(context.Background(), domain.Event{MaxParticipants: 5}, domain.User{Email: "ana@example.com"})
	require.NoError(t, err)

	user := domain.User{Email: "bogdan@example.com"}

	interested, err := svc.ToggleInterest(context.Background(), event.ID, user)
	require.NoError(t, err)
	assert.True(t, interested)

	interested, err = svc.ToggleInterest(context.Background(), event.ID, user)
	require.NoError(t, err)
	assert.False(t, interested)
	assert.Empty(t, repo.interests)
}

func TestEventService_Cancel(t *testing.T) {
	repo := &fakeEventRepository{}
	notifier := &fakeNotifier{}
	svc := newTestEventService(repo, notifier)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		SportType:       "Fotbal",
		Date:            "2025-07-01",
		Location:        "Parc Herastrau",
		MaxParticipants: 5,
	}, domain.User{Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), event.ID, domain.User{Email: "bogdan@example.com"})
	require.NoError(t, err)
	_, err = svc.ToggleInterest(context.Background(), event.ID, domain.User{Email: "cristina@example.com"})
	require.NoError(t, err)

	notifier.sent = nil
	require.NoError(t, svc.Cancel(context.Background(), event.ID, "ana@example.com"))

	_, err = svc.GetEvent(context.Background(), event.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	// Every participant hears about the cancellation; interested users
	// do not.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "bogdan@example.com", notifier.sent[0].userID)
	assert.Equal(t, domain.NotificationEventCancelled, notifier.sent[0].kind)

	// Participant and interest rows survive the event's deletion.
	assert.Len(t, repo.participants, 1)
	assert.Len(t, repo.interests, 1)
}

func TestEventService_Cancel_NotOrganizer(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	event, err := svc.CreateEvent(context.Background(), domain.Event{MaxParticipants: 5}, domain.User{Email: "ana@example.com"})
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), event.ID, "bogdan@example.com")

	assert.ErrorIs(t, err, ErrNotOrganizer)
	assert.Len(t, repo.events, 1)
}

func TestEventService_MyEventViews(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := newTestEventService(repo, &fakeNotifier{})

	ana := domain.User{Email: "ana@example.com"}
	bogdan := domain.User{Email: "bogdan@example.com"}

	pastOrganized, err := svc.CreateEvent(context.Background(), domain.Event{
		Date: "2025-05-01", Time: "10:00", MaxParticipants: 5,
	}, ana)
	require.NoError(t, err)

	futureOrganized, err := svc.CreateEvent(context.Background(), domain.Event{
		Date: "2025-07-01", Time: "10:00", MaxParticipants: 5,
	}, ana)
	require.NoError(t, err)

	joined, err := svc.CreateEvent(context.Background(), domain.Event{
		Date: "2025-07-02", Time: "10:00", MaxParticipants: 5,
	}, bogdan)
	require.NoError(t, err)
	_, err = svc.Join(context.Background(), joined.ID, ana)
	require.NoError(t, err)

	organized, err := svc.OrganizedEvents(context.Background(), ana.Email)
	require.NoError(t, err)
	assert.Len(t, organized, 2)

	participating, err := svc.ParticipatingEvents(context.Background(), ana.Email)
	require.NoError(t, err)
	require.Len(t, participating, 1)
	assert.Equal(t, joined.ID, participating[0].ID)

	// The fake clock sits at 2025-06-01, so only the May event is history.
	history, err := svc.HistoryEvents(context.Background(), ana.Email)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, pastOrganized.ID, history[0].ID)
	assert.NotEqual(t, futureOrganized.ID, history[0].ID)
}
