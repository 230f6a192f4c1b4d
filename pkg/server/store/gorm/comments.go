package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure CommentsStore implements store.CommentsStore
var _ store.CommentsStore = (*CommentsStore)(nil)

// CommentsStore implements store.CommentsStore using GORM
type CommentsStore struct {
	db *gorm.DB
}

// NewCommentsStore creates a new CommentsStore
func NewCommentsStore(db *gorm.DB) *CommentsStore {
	return &CommentsStore{db: db}
}

// CreateComment persists a new comment
func (s *CommentsStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// CommentByID retrieves a comment by id
func (s *CommentsStore) CommentByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&comment)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &comment, nil
}

// PublicCommentsByArticle lists approved comments of an article
func (s *CommentsStore) PublicCommentsByArticle(ctx context.Context, articleID string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.db.WithContext(ctx).Where("article_id = ? AND public = ?", articleID, true).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment persists changed comment fields
func (s *CommentsStore) UpdateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	tx := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", comment.ID).Updates(map[string]interface{}{
		"body":   comment.Body,
		"author": comment.Author,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.CommentByID(ctx, comment.ID)
}

// ApproveComment marks a comment public
func (s *CommentsStore) ApproveComment(ctx context.Context, id string) (*model.Comment, error) {
	tx := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("public", true)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.CommentByID(ctx, id)
}

// DeleteComment removes a comment
func (s *CommentsStore) DeleteComment(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
