package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
)

// ArticlesStore abstracts article storage operations
type ArticlesStore interface {
	// CreateArticle persists a new article
	CreateArticle(ctx context.Context, article *model.Article) error

	// ArticleByID retrieves an article by id
	ArticleByID(ctx context.Context, id string) (*model.Article, error)

	// PublicArticles lists published articles
	PublicArticles(ctx context.Context) ([]model.Article, error)

	// PublicArticlesByDomain lists published articles for a domain
	PublicArticlesByDomain(ctx context.Context, domain string) ([]model.Article, error)

	// ArticlesByGroup lists all articles of a group, published or not
	ArticlesByGroup(ctx context.Context, groupID string) ([]model.Article, error)

	// UpdateArticle persists changed article fields and returns the
	// updated row
	UpdateArticle(ctx context.Context, article *model.Article) (*model.Article, error)

	// SetArticlePublish flips the publish flag
	SetArticlePublish(ctx context.Context, id string, publish bool) (*model.Article, error)

	// IncrementArticleRead bumps the read counter
	IncrementArticleRead(ctx context.Context, id string) error

	// DeleteArticle removes an article
	DeleteArticle(ctx context.Context, id string) error
}
