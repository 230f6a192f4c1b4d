package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure ArticlesStore implements store.ArticlesStore
var _ store.ArticlesStore = (*ArticlesStore)(nil)

// ArticlesStore implements store.ArticlesStore using GORM
type ArticlesStore struct {
	db *gorm.DB
}

// NewArticlesStore creates a new ArticlesStore
func NewArticlesStore(db *gorm.DB) *ArticlesStore {
	return &ArticlesStore{db: db}
}

// CreateArticle persists a new article
func (s *ArticlesStore) CreateArticle(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Create(article).Error
}

// ArticleByID retrieves an article by id
func (s *ArticlesStore) ArticleByID(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&article)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &article, nil
}

// PublicArticles lists published articles, newest first
func (s *ArticlesStore) PublicArticles(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := s.db.WithContext(ctx).Where("publish = ?", true).Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// PublicArticlesByDomain lists published articles for a domain
func (s *ArticlesStore) PublicArticlesByDomain(ctx context.Context, domain string) ([]model.Article, error) {
	var articles []model.Article
	if err := s.db.WithContext(ctx).Where("publish = ? AND domain = ?", true, domain).Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticlesByGroup lists all articles of a group, published or not
func (s *ArticlesStore) ArticlesByGroup(ctx context.Context, groupID string) ([]model.Article, error) {
	var articles []model.Article
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateArticle persists changed article fields
func (s *ArticlesStore) UpdateArticle(ctx context.Context, article *model.Article) (*model.Article, error) {
	tx := s.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", article.ID).Updates(map[string]interface{}{
		"header":   article.Header,
		"markdown": article.Markdown,
		"domain":   article.Domain,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.ArticleByID(ctx, article.ID)
}

// SetArticlePublish flips the publish flag
func (s *ArticlesStore) SetArticlePublish(ctx context.Context, id string, publish bool) (*model.Article, error) {
	tx := s.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Update("publish", publish)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.ArticleByID(ctx, id)
}

// IncrementArticleRead bumps the read counter
func (s *ArticlesStore) IncrementArticleRead(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).
		Update("read", gorm.Expr(`"read" + 1`)).Error
}

// DeleteArticle removes an article
func (s *ArticlesStore) DeleteArticle(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
