package access

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cairncms/cairn/pkg/crypto"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Groups manages group lifecycle and membership, gating every mutation on
// the caller's rights in the group.
type Groups struct {
	groups   store.GroupsStore
	members  store.MembersStore
	resolver *Resolver
}

// NewGroups creates a new Groups service
func NewGroups(groups store.GroupsStore, members store.MembersStore) *Groups {
	return &Groups{
		groups:   groups,
		members:  members,
		resolver: NewResolver(members),
	}
}

// CreateGroup creates a group with the caller as its first member holding
// full rights. Group and membership land atomically.
func (g *Groups) CreateGroup(ctx context.Context, ownerID string, group *model.Group) (*model.Group, *model.Member, error) {
	if group.Name == "" {
		return nil, nil, NewValidationError("group name is required")
	}

	group.ID = uuid.NewString()
	if group.RegistrationCode == "" {
		code, err := crypto.RandomToken(crypto.ActivationCodeLength)
		if err != nil {
			return nil, nil, err
		}
		group.RegistrationCode = code
	}

	owner := &model.Member{
		ID:        uuid.NewString(),
		AccountID: ownerID,
		Rights:    rights.Full,
	}
	if err := g.groups.CreateGroupWithOwner(ctx, group, owner); err != nil {
		return nil, nil, err
	}
	return group, owner, nil
}

// Group retrieves a group the caller can read
func (g *Groups) Group(ctx context.Context, accountID, groupID string) (*model.Group, error) {
	if err := g.resolver.ConfirmGroupPermission(ctx, groupID, accountID, rights.Read); err != nil {
		return nil, err
	}
	group, err := g.groups.GroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewNotFoundError("group %s not found", groupID)
		}
		return nil, err
	}
	return group, nil
}

// UpdateGroup persists changed group fields for a caller with write rights
func (g *Groups) UpdateGroup(ctx context.Context, accountID string, group *model.Group) (*model.Group, error) {
	if err := g.resolver.ConfirmGroupPermission(ctx, group.ID, accountID, rights.Write); err != nil {
		return nil, err
	}
	updated, err := g.groups.UpdateGroup(ctx, group)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewNotFoundError("group %s not found", group.ID)
		}
		return nil, err
	}
	return updated, nil
}

// DeleteGroup removes a group and all its memberships for a caller with
// delete rights
func (g *Groups) DeleteGroup(ctx context.Context, accountID, groupID string) error {
	if err := g.resolver.ConfirmGroupPermission(ctx, groupID, accountID, rights.Delete); err != nil {
		return err
	}
	if err := g.groups.DeleteGroup(ctx, groupID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewNotFoundError("group %s not found", groupID)
		}
		return err
	}
	return nil
}

// Members lists the memberships of a group the caller can read
func (g *Groups) Members(ctx context.Context, accountID, groupID string) ([]model.Member, error) {
	if err := g.resolver.ConfirmGroupPermission(ctx, groupID, accountID, rights.Read); err != nil {
		return nil, err
	}
	return g.members.MembersByGroup(ctx, groupID)
}

// AddMember grants an account membership in a group. Requires write rights.
func (g *Groups) AddMember(ctx context.Context, callerID, groupID, accountID string, set rights.Set) (*model.Member, error) {
	if err := g.resolver.ConfirmGroupPermission(ctx, groupID, callerID, rights.Write); err != nil {
		return nil, err
	}
	member := &model.Member{
		ID:        uuid.NewString(),
		GroupID:   groupID,
		AccountID: accountID,
		Rights:    set,
	}
	if err := g.members.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateMemberRights replaces a member's rights. Requires write rights.
func (g *Groups) UpdateMemberRights(ctx context.Context, callerID, groupID, accountID string, set rights.Set) (*model.Member, error) {
	if err := g.resolver.ConfirmGroupPermission(ctx, groupID, callerID, rights.Write); err != nil {
		return nil, err
	}
	member, err := g.members.UpdateMemberRights(ctx, groupID, accountID, set)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewNotFoundError("member not found")
		}
		return nil, err
	}
	return member, nil
}

// RemoveMember revokes an account's membership. Requires delete rights.
func (g *Groups) RemoveMember(ctx context.Context, callerID, groupID, accountID string) error {
	if err := g.resolver.ConfirmGroupPermission(ctx, groupID, callerID, rights.Delete); err != nil {
		return err
	}
	if err := g.members.DeleteMember(ctx, groupID, accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewNotFoundError("member not found")
		}
		return err
	}
	return nil
}

// Resolver exposes the permission resolver backing this service
func (g *Groups) Resolver() *Resolver {
	return g.resolver
}
