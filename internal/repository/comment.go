package repository

import (
	"context"
	"fmt"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository/dao"
)

var ErrCommentNotFound = dao.ErrCommentNotFound

type CommentDAO interface {
	Insert(ctx context.Context, comment dao.Comment) (dao.Comment, error)
	FindByID(ctx context.Context, id string) (dao.Comment, error)
	FindByEvent(ctx context.Context, eventID string) ([]dao.Comment, error)
	Delete(ctx context.Context, id string) error
}

type CommentRepository struct {
	dao CommentDAO
}

func NewCommentRepository(dao CommentDAO) *CommentRepository {
	return &CommentRepository{
		dao: dao,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.dao.Insert(ctx, dao.Comment{
		ID:          comment.ID,
		EventID:     comment.EventID,
		AuthorEmail: comment.AuthorEmail,
		AuthorName:  comment.AuthorName,
		Text:        comment.Text,
		CreatedAt:   comment.CreatedAt,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (domain.Comment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CommentRepository) FindByEvent(ctx context.Context, eventID string) ([]domain.Comment, error) {
	found, err := r.dao.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvent -> %w", err)
	}

	comments := make([]domain.Comment, 0, len(found))
	for _, comment := range found {
		comments = append(comments, r.daoToDomain(comment))
	}

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CommentRepository) daoToDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:          c.ID,
		EventID:     c.EventID,
		AuthorEmail: c.AuthorEmail,
		AuthorName:  c.AuthorName,
		Text:        c.Text,
		CreatedAt:   c.CreatedAt,
	}
}
