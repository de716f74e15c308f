package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportmeet/sportmeet-api/internal/api/handler/v1/request"
	"github.com/sportmeet/sportmeet-api/internal/api/handler/v1/response"
	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event, organizer domain.User) (domain.Event, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	RecentEvents(ctx context.Context) ([]domain.Event, error)
	EventDetail(ctx context.Context, id string) (domain.Event, []domain.Participant, []domain.Interest, error)
	Join(ctx context.Context, eventID string, user domain.User) (domain.Participant, error)
	Leave(ctx context.Context, eventID, email string) error
	ToggleInterest(ctx context.Context, eventID string, user domain.User) (bool, error)
	Cancel(ctx context.Context, eventID, requesterEmail string) error
	OrganizedEvents(ctx context.Context, email string) ([]domain.Event, error)
	ParticipatingEvents(ctx context.Context, email string) ([]domain.Event, error)
	HistoryEvents(ctx context.Context, email string) ([]domain.Event, error)
}

// EventCommentService is the slice of the comment service the event
// detail page needs.
type EventCommentService interface {
	ListComments(ctx context.Context, eventID string) ([]domain.Comment, error)
}

type EventHandler struct {
	svc      EventService
	comments EventCommentService
	uSvc     UserService
}

func NewEventHandler(svc EventService, comments EventCommentService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:      svc,
		comments: comments,
		uSvc:     uSvc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Description  Creates a sports meetup organized by the authenticated user.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		SportType:        input.SportType,
		Date:             input.Date,
		Time:             input.Time,
		Location:         input.Location,
		MaxParticipants:  input.MaxParticipants,
		PerformanceLevel: input.PerformanceLevel,
		Equipment:        input.Equipment,
		Description:      input.Description,
	}, user)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListEvents godoc
// @Summary      List events
// @Description  Lists events matching the dashboard filters, sorted by date and time.
// @Tags         events
// @Produce      json
// @Param        query              query     string false "substring match on sport type"
// @Param        sport_type         query     string false "exact sport type"
// @Param        performance_level  query     string false "exact performance level"
// @Param        date               query     string false "exact date (YYYY-MM-DD)"
// @Param        sort               query     string false "asc or desc" default(asc)
// @Success      200  {array}   domain.Event
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	var query request.ListEventsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sort := domain.SortOrder(query.Sort)
	if sort == "" {
		sort = domain.SortAsc
	}

	events, err := h.svc.ListEvents(ctx.Request.Context(), domain.EventFilter{
		Query:            query.Query,
		SportType:        query.SportType,
		PerformanceLevel: query.PerformanceLevel,
		Date:             query.Date,
		Sort:             sort,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleRecentEvents godoc
// @Summary      List the most recently created events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events/recent [get]
// @Security BearerAuth
func (h *EventHandler) HandleRecentEvents(ctx *gin.Context) {
	events, err := h.svc.RecentEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleRecentEvents -> h.svc.RecentEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event's detail page data
// @Tags         events
// @Produce      json
// @Param        eventID  path      string true "event ID"
// @Success      200      {object}  response.EventDetailResponse
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	event, participants, interests, err := h.svc.EventDetail(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.EventDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	comments, err := h.comments.ListComments(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvent -> h.comments.ListComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	organizer := event.OrganizerEmail
	if organizer == "" {
		organizer = response.UnknownOrganizer
	}

	availableSpots := event.MaxParticipants - len(participants)
	if availableSpots < 0 {
		availableSpots = 0
	}

	isParticipant := false
	for _, p := range participants {
		if p.Email == user.Email {
			isParticipant = true
			break
		}
	}

	isInterested := false
	for _, i := range interests {
		if i.Email == user.Email {
			isInterested = true
			break
		}
	}

	ctx.JSON(http.StatusOK, response.EventDetailResponse{
		Event:          event,
		Organizer:      organizer,
		Participants:   participants,
		Interested:     interests,
		Comments:       comments,
		AvailableSpots: availableSpots,
		IsOrganizer:    event.OrganizerEmail == user.Email,
		IsParticipant:  isParticipant,
		IsInterested:   isInterested,
	})
}

// HandleCancelEvent godoc
// @Summary      Cancel an event
// @Description  Deletes the event and notifies its participants. Only the organizer can cancel.
// @Tags         events
// @Produce      json
// @Param        eventID  path      string true "event ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleCancelEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	if err := h.svc.Cancel(ctx.Request.Context(), eventID, user.Email); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}
		if errors.Is(err, service.ErrNotOrganizer) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotOrganizer))
			return
		}

		err = fmt.Errorf("v1.HandleCancelEvent -> h.svc.Cancel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "event cancelled"})
}

// HandleJoinEvent godoc
// @Summary      Join an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string true "event ID"
// @Success      201      {object}  domain.Participant
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/join [post]
// @Security BearerAuth
func (h *EventHandler) HandleJoinEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	participant, err := h.svc.Join(ctx.Request.Context(), eventID, user)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}
		if errors.Is(err, service.ErrAlreadyJoined) || errors.Is(err, service.ErrEventFull) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleJoinEvent -> h.svc.Join -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleLeaveEvent godoc
// @Summary      Leave an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string true "event ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/leave [post]
// @Security BearerAuth
func (h *EventHandler) HandleLeaveEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	if err := h.svc.Leave(ctx.Request.Context(), eventID, user.Email); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleLeaveEvent -> h.svc.Leave -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "left the event"})
}

// HandleToggleInterest godoc
// @Summary      Toggle interest in an event
// @Description  Marks the caller as interested, or removes the mark if present.
// @Tags         events
// @Produce      json
// @Param        eventID  path      string true "event ID"
// @Success      200      {object}  response.ToggleInterestResponse
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/interest [post]
// @Security BearerAuth
func (h *EventHandler) HandleToggleInterest(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	interested, err := h.svc.ToggleInterest(ctx.Request.Context(), eventID, user)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleToggleInterest -> h.svc.ToggleInterest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ToggleInterestResponse{Interested: interested})
}

// HandleMyEvents godoc
// @Summary      List the caller's events
// @Description  Returns the organized, participating or history view for the authenticated user.
// @Tags         events
// @Produce      json
// @Param        view  query     string true "organized, participating or history"
// @Success      200   {array}   domain.Event
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /me/events [get]
// @Security BearerAuth
func (h *EventHandler) HandleMyEvents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var query request.MyEventsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var (
		events []domain.Event
		err    error
	)
	switch query.View {
	case "organized":
		events, err = h.svc.OrganizedEvents(ctx.Request.Context(), user.Email)
	case "participating":
		events, err = h.svc.ParticipatingEvents(ctx.Request.Context(), user.Email)
	case "history":
		events, err = h.svc.HistoryEvents(ctx.Request.Context(), user.Email)
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleMyEvents -> view %v -> %w", query.View, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}
