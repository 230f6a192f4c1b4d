package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure PagesStore implements store.PagesStore
var _ store.PagesStore = (*PagesStore)(nil)

// PagesStore implements store.PagesStore using GORM
type PagesStore struct {
	db *gorm.DB
}

// NewPagesStore creates a new PagesStore
func NewPagesStore(db *gorm.DB) *PagesStore {
	return &PagesStore{db: db}
}

// CreatePage persists a new page
func (s *PagesStore) CreatePage(ctx context.Context, page *model.Page) error {
	return s.db.WithContext(ctx).Create(page).Error
}

// PageByID retrieves a page by id
func (s *PagesStore) PageByID(ctx context.Context, id string) (*model.Page, error) {
	return s.pageBy(ctx, "id = ?", id)
}

// PageByLink retrieves a page by its unique link
func (s *PagesStore) PageByLink(ctx context.Context, link string) (*model.Page, error) {
	return s.pageBy(ctx, "link = ?", link)
}

func (s *PagesStore) pageBy(ctx context.Context, cond string, arg interface{}) (*model.Page, error) {
	var page model.Page
	tx := s.db.WithContext(ctx).Where(cond, arg).First(&page)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &page, nil
}

// PagesByDomain lists pages for a domain
func (s *PagesStore) PagesByDomain(ctx context.Context, domain string) ([]model.Page, error) {
	var pages []model.Page
	if err := s.db.WithContext(ctx).Where("domain = ?", domain).Order("created_at").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// PagesByGroup lists pages of a group
func (s *PagesStore) PagesByGroup(ctx context.Context, groupID string) ([]model.Page, error) {
	var pages []model.Page
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("created_at").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// UpdatePage persists changed page fields
func (s *PagesStore) UpdatePage(ctx context.Context, page *model.Page) (*model.Page, error) {
	tx := s.db.WithContext(ctx).Model(&model.Page{}).Where("id = ?", page.ID).Updates(map[string]interface{}{
		"name":     page.Name,
		"link":     page.Link,
		"markdown": page.Markdown,
		"icon":     page.Icon,
		"domain":   page.Domain,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.PageByID(ctx, page.ID)
}

// DeletePage removes a page
func (s *PagesStore) DeletePage(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Page{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
