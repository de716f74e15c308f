package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository"
)

var (
	ErrCommentNotFound  = repository.ErrCommentNotFound
	ErrNotCommentAuthor = errors.New("only the author can delete a comment")
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	FindByID(ctx context.Context, id string) (domain.Comment, error)
	FindByEvent(ctx context.Context, eventID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// CommentEventRepository is the slice of the event repository the comment
// service needs: existence checks for the commented event.
type CommentEventRepository interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
}

type CommentService struct {
	repo   CommentRepository
	events CommentEventRepository
}

func NewCommentService(repo CommentRepository, events CommentEventRepository) *CommentService {
	return &CommentService{
		repo:   repo,
		events: events,
	}
}

func (s *CommentService) ListComments(ctx context.Context, eventID string) ([]domain.Comment, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	comments, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEvent -> %w", err)
	}

	return comments, nil
}

func (s *CommentService) AddComment(ctx context.Context, eventID string, author domain.User, text string) (domain.Comment, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return domain.Comment{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Comment{
		ID:          newID("comment"),
		EventID:     eventID,
		AuthorEmail: author.Email,
		AuthorName:  author.DisplayName(),
		Text:        text,
		CreatedAt:   timeNow(),
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// DeleteComment removes a comment when the requester wrote it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, requesterEmail string) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if comment.AuthorEmail != requesterEmail {
		return ErrNotCommentAuthor
	}

	if err = s.repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
