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

type CommentService interface {
	ListComments(ctx context.Context, eventID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, eventID string, author domain.User, text string) (domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, requesterEmail string) error
}

type CommentHandler struct {
	svc  CommentService
	uSvc UserService
}

func NewCommentHandler(svc CommentService, uSvc UserService) *CommentHandler {
	return &CommentHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListComments godoc
// @Summary      List an event's comments
// @Tags         comments
// @Produce      json
// @Param        eventID  path      string true "event ID"
// @Success      200      {array}   domain.Comment
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/comments [get]
// @Security BearerAuth
func (h *CommentHandler) HandleListComments(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	comments, err := h.svc.ListComments(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleListComments -> h.svc.ListComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// HandleAddComment godoc
// @Summary      Comment on an event
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                        true "event ID"
// @Param        input    body      request.CreateCommentRequest  true "comment body"
// @Success      201      {object}  domain.Comment
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/comments [post]
// @Security BearerAuth
func (h *CommentHandler) HandleAddComment(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	var input request.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	comment, err := h.svc.AddComment(ctx.Request.Context(), eventID, user, input.Text)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleAddComment -> h.svc.AddComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// HandleDeleteComment godoc
// @Summary      Delete a comment
// @Description  Removes a comment. Only its author may delete it.
// @Tags         comments
// @Produce      json
// @Param        eventID    path      string true "event ID"
// @Param        commentID  path      string true "comment ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /events/{eventID}/comments/{commentID} [delete]
// @Security BearerAuth
func (h *CommentHandler) HandleDeleteComment(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	commentID := ctx.Param("commentID")

	if err := h.svc.DeleteComment(ctx.Request.Context(), commentID, user.Email); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("comment", "ID", commentID))
			return
		}
		if errors.Is(err, service.ErrNotCommentAuthor) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotCommentAuthor))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteComment -> h.svc.DeleteComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "comment deleted"})
}
