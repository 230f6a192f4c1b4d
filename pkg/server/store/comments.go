package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
)

// CommentsStore abstracts comment storage operations
type CommentsStore interface {
	// CreateComment persists a new comment
	CreateComment(ctx context.Context, comment *model.Comment) error

	// CommentByID retrieves a comment by id
	CommentByID(ctx context.Context, id string) (*model.Comment, error)

	// PublicCommentsByArticle lists approved comments of an article
	PublicCommentsByArticle(ctx context.Context, articleID string) ([]model.Comment, error)

	// UpdateComment persists changed comment fields and returns the
	// updated row
	UpdateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// ApproveComment marks a comment public
	ApproveComment(ctx context.Context, id string) (*model.Comment, error)

	// DeleteComment removes a comment
	DeleteComment(ctx context.Context, id string) error
}
