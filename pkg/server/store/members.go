package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
)

// MembersStore abstracts membership storage operations
type MembersStore interface {
	// MemberByGroupAndAccount retrieves the unique membership row for the
	// (group, account) pair
	MemberByGroupAndAccount(ctx context.Context, groupID, accountID string) (*model.Member, error)

	// MembersByGroup lists all memberships of a group
	MembersByGroup(ctx context.Context, groupID string) ([]model.Member, error)

	// MembershipsByAccount lists all groups an account belongs to
	MembershipsByAccount(ctx context.Context, accountID string) ([]model.Member, error)

	// AddMember persists a new membership row
	AddMember(ctx context.Context, member *model.Member) error

	// UpdateMemberRights replaces the rights of an existing membership
	UpdateMemberRights(ctx context.Context, groupID, accountID string, set rights.Set) (*model.Member, error)

	// DeleteMember removes a membership, revoking every right the account
	// held in the group
	DeleteMember(ctx context.Context, groupID, accountID string) error
}
