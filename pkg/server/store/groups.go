package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
)

// GroupsStore abstracts group storage operations
type GroupsStore interface {
	// CreateGroupWithOwner persists the group and its owning membership
	// as one atomic unit. A crash can never orphan a group.
	CreateGroupWithOwner(ctx context.Context, group *model.Group, owner *model.Member) error

	// GroupByID retrieves a group by id
	GroupByID(ctx context.Context, id string) (*model.Group, error)

	// ListGroups returns all groups
	ListGroups(ctx context.Context) ([]model.Group, error)

	// UpdateGroup persists changed group fields and returns the updated row
	UpdateGroup(ctx context.Context, group *model.Group) (*model.Group, error)

	// DeleteGroup removes a group and its memberships
	DeleteGroup(ctx context.Context, id string) error
}
