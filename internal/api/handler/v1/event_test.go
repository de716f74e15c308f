package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportmeet/sportmeet-api/internal/api/handler/v1/response"
	"github.com/sportmeet/sportmeet-api/internal/api/middleware"
	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/service"
)

type fakeUserService struct {
	user domain.User
}

func (f *fakeUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	if id != f.user.ID {
		return domain.User{}, service.ErrUserNotFound
	}

	return f.user, nil
}

type fakeEventService struct {
	event        domain.Event
	participants []domain.Participant
	interests    []domain.Interest

	joinParticipant domain.Participant
	joinErr         error
	cancelErr       error
	toggleResult    bool

	events []domain.Event
}

func (f *fakeEventService) CreateEvent(_ context.Context, event domain.Event, organizer domain.User) (domain.Event, error) {
	event.ID = "evt_1"
	event.OrganizerEmail = organizer.Email
	return event, nil
}

func (f *fakeEventService) ListEvents(_ context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	return domain.FilterEvents(f.events, filter), nil
}

func (f *fakeEventService) RecentEvents(_ context.Context) ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeEventService) EventDetail(_ context.Context, id string) (domain.Event, []domain.Participant, []domain.Interest, error) {
	if id != f.event.ID {
		return domain.Event{}, nil, nil, service.ErrEventNotFound
	}

	return f.event, f.participants, f.interests, nil
}

func (f *fakeEventService) Join(_ context.Context, _ string, _ domain.User) (domain.Participant, error) {
	return f.joinParticipant, f.joinErr
}

func (f *fakeEventService) Leave(_ context.Context, _, _ string) error {
	return nil
}

func (f *fakeEventService) ToggleInterest(_ context.Context, _ string, _ domain.User) (bool, error) {
	return f.toggleResult, nil
}

func (f *fakeEventService) Cancel(_ context.Context, _, _ string) error {
	return f.cancelErr
}

func (f *fakeEventService) OrganizedEvents(_ context.Context, _ string) ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeEventService) ParticipatingEvents(_ context.Context, _ string) ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeEventService) HistoryEvents(_ context.Context, _ string) ([]domain.Event, error) {
	return f.events, nil
}

type fakeEventComments struct {
	comments []domain.Comment
}

func (f *fakeEventComments) ListComments(_ context.Context, _ string) ([]domain.Comment, error) {
	return f.comments, nil
}

// asUser injects the authenticated user's ID the way the JWT middleware
// would.
func asUser(id uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, id)
		ctx.Next()
	}
}

func setupEventTestRouter(svc EventService, comments EventCommentService, user domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewEventHandler(svc, comments, &fakeUserService{user: user})

	router := gin.New()
	router.Use(asUser(user.ID))
	router.POST("/events", handler.HandleCreateEvent)
	router.GET("/events", handler.HandleListEvents)
	router.GET("/events/recent", handler.HandleRecentEvents)
	router.GET("/events/:eventID", handler.HandleGetEvent)
	router.DELETE("/events/:eventID", handler.HandleCancelEvent)
	router.POST("/events/:eventID/join", handler.HandleJoinEvent)
	router.POST("/events/:eventID/interest", handler.HandleToggleInterest)
	router.GET("/me/events", handler.HandleMyEvents)

	return router
}

func TestHandleGetEvent(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	svc := &fakeEventService{
		event: domain.Event{
			ID:              "evt_1",
			SportType:       "Fotbal",
			OrganizerEmail:  "bogdan@example.com",
			MaxParticipants: 10,
		},
		participants: []domain.Participant{
			{EventID: "evt_1", Email: "ana@example.com", Name: "Ana"},
			{EventID: "evt_1", Email: "cristina@example.com", Name: "Cristina"},
		},
		interests: []domain.Interest{
			{EventID: "evt_1", Email: "dan@example.com"},
		},
	}
	comments := &fakeEventComments{comments: []domain.Comment{{ID: "comment_1", EventID: "evt_1", Text: "Vin!"}}}
	router := setupEventTestRouter(svc, comments, ana)

	req := httptest.NewRequest(http.MethodGet, "/events/evt_1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got response.EventDetailResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "bogdan@example.com", got.Organizer)
	assert.Equal(t, 8, got.AvailableSpots)
	assert.True(t, got.IsParticipant)
	assert.False(t, got.IsOrganizer)
	assert.False(t, got.IsInterested)
	assert.Len(t, got.Comments, 1)
}

func TestHandleGetEvent_UnknownOrganizerFallback(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	svc := &fakeEventService{
		event: domain.Event{ID: "evt_1", MaxParticipants: 4},
	}
	router := setupEventTestRouter(svc, &fakeEventComments{}, ana)

	req := httptest.NewRequest(http.MethodGet, "/events/evt_1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got response.EventDetailResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, response.UnknownOrganizer, got.Organizer)
}

func TestHandleGetEvent_NotFound(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	router := setupEventTestRouter(&fakeEventService{}, &fakeEventComments{}, ana)

	req := httptest.NewRequest(http.MethodGet, "/events/evt_missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleJoinEvent_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"already joined", service.ErrAlreadyJoined},
		{"event full", service.ErrEventFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ana := domain.User{ID: 1, Email: "ana@example.com"}
			router := setupEventTestRouter(&fakeEventService{joinErr: tt.err}, &fakeEventComments{}, ana)

			req := httptest.NewRequest(http.MethodPost, "/events/evt_1/join", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusConflict, resp.Code)
		})
	}
}

func TestHandleCancelEvent_NotOrganizer(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	router := setupEventTestRouter(&fakeEventService{cancelErr: service.ErrNotOrganizer}, &fakeEventComments{}, ana)

	req := httptest.NewRequest(http.MethodDelete, "/events/evt_1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandleListEvents_BadSort(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	router := setupEventTestRouter(&fakeEventService{}, &fakeEventComments{}, ana)

	req := httptest.NewRequest(http.MethodGet, "/events?sort=sideways", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleMyEvents_BadView(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	router := setupEventTestRouter(&fakeEventService{}, &fakeEventComments{}, ana)

	req := httptest.NewRequest(http.MethodGet, "/me/events?view=everything", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleMyEvents(t *testing.T) {
	ana := domain.User{ID: 1, Email: "ana@example.com"}
	svc := &fakeEventService{events: []domain.Event{{ID: "evt_1"}}}
	router := setupEventTestRouter(svc, &fakeEventComments{}, ana)

	for _, view := range []string{"organized", "participating", "history"} {
		req := httptest.NewRequest(http.MethodGet, "/me/events?view="+view, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code, view)
	}
}
