package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type Comment struct {
	ID string `gorm:"primaryKey"`

	EventID     string `gorm:"index;not null"`
	AuthorEmail string `gorm:"not null"`
	AuthorName  string `gorm:"not null"`
	Text        string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		db: db,
	}
}

func (d *CommentDAO) Insert(ctx context.Context, comment Comment) (Comment, error) {
	result := d.db.WithContext(ctx).Create(&comment)
	if result.Error != nil {
		return Comment{}, result.Error
	}

	return comment, nil
}

func (d *CommentDAO) FindByID(ctx context.Context, id string) (Comment, error) {
	var comment Comment

	result := d.db.WithContext(ctx).First(&comment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Comment{}, ErrCommentNotFound
		}

		return Comment{}, result.Error
	}

	return comment, nil
}

func (d *CommentDAO) FindByEvent(ctx context.Context, eventID string) ([]Comment, error) {
	var comments []Comment

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}

	return comments, nil
}

func (d *CommentDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
