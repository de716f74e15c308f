package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportmeet/sportmeet-api/internal/api/handler/v1/response"
	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/service"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationHandler struct {
	svc  NotificationService
	uSvc UserService
}

func NewNotificationHandler(svc NotificationService, uSvc UserService) *NotificationHandler {
	return &NotificationHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListNotifications godoc
// @Summary      List the caller's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   domain.Notification
// @Failure      500  {object}  response.Err
// @Router       /notifications [get]
// @Security BearerAuth
func (h *NotificationHandler) HandleListNotifications(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	notifications, err := h.svc.ListForUser(ctx.Request.Context(), user.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleListNotifications -> h.svc.ListForUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// HandleUnreadCount godoc
// @Summary      Count the caller's unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.UnreadCountResponse
// @Failure      500  {object}  response.Err
// @Router       /notifications/unread-count [get]
// @Security BearerAuth
func (h *NotificationHandler) HandleUnreadCount(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	count, err := h.svc.UnreadCount(ctx.Request.Context(), user.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleUnreadCount -> h.svc.UnreadCount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.UnreadCountResponse{Count: count})
}

// HandleMarkRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Param        notificationID  path      string true "notification ID"
// @Success      200             {object}  response.MessageResponse
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /notifications/{notificationID}/read [post]
// @Security BearerAuth
func (h *NotificationHandler) HandleMarkRead(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	notificationID := ctx.Param("notificationID")

	if err := h.svc.MarkRead(ctx.Request.Context(), notificationID, user.Email); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("notification", "ID", notificationID))
			return
		}

		err = fmt.Errorf("v1.HandleMarkRead -> h.svc.MarkRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "notification marked as read"})
}

// HandleMarkAllRead godoc
// @Summary      Mark all of the caller's notifications as read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Failure      500  {object}  response.Err
// @Router       /notifications/read-all [post]
// @Security BearerAuth
func (h *NotificationHandler) HandleMarkAllRead(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.MarkAllRead(ctx.Request.Context(), user.Email); err != nil {
		err = fmt.Errorf("v1.HandleMarkAllRead -> h.svc.MarkAllRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "all notifications marked as read"})
}
