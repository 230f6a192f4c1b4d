package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
)

// PagesStore abstracts page storage operations
type PagesStore interface {
	// CreatePage persists a new page
	CreatePage(ctx context.Context, page *model.Page) error

	// PageByID retrieves a page by id
	PageByID(ctx context.Context, id string) (*model.Page, error)

	// PageByLink retrieves a page by its unique link
	PageByLink(ctx context.Context, link string) (*model.Page, error)

	// PagesByDomain lists pages for a domain
	PagesByDomain(ctx context.Context, domain string) ([]model.Page, error)

	// PagesByGroup lists pages of a group
	PagesByGroup(ctx context.Context, groupID string) ([]model.Page, error)

	// UpdatePage persists changed page fields and returns the updated row
	UpdatePage(ctx context.Context, page *model.Page) (*model.Page, error)

	// DeletePage removes a page
	DeletePage(ctx context.Context, id string) error
}
