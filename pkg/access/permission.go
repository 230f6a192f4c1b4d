package access

import (
	"context"
	"errors"

	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Resolver answers permission questions from membership rows. A missing
// membership resolves to no rights; there is no implicit grant anywhere.
type Resolver struct {
	members store.MembersStore
}

// NewResolver creates a new Resolver
func NewResolver(members store.MembersStore) *Resolver {
	return &Resolver{members: members}
}

// GroupRights returns the rights an account holds in a group. An account
// with no membership holds rights.None.
func (r *Resolver) GroupRights(ctx context.Context, groupID, accountID string) (rights.Set, error) {
	member, err := r.members.MemberByGroupAndAccount(ctx, groupID, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return rights.None, nil
		}
		return rights.None, err
	}
	return member.Rights, nil
}

// HasGroupPermission reports whether the account holds every right in
// required within the group
func (r *Resolver) HasGroupPermission(ctx context.Context, groupID, accountID string, required rights.Set) (bool, error) {
	held, err := r.GroupRights(ctx, groupID, accountID)
	if err != nil {
		return false, err
	}
	return held.Has(required), nil
}

// ConfirmGroupPermission returns an AuthorizationError unless the account
// holds every right in required within the group
func (r *Resolver) ConfirmGroupPermission(ctx context.Context, groupID, accountID string, required rights.Set) error {
	ok, err := r.HasGroupPermission(ctx, groupID, accountID, required)
	if err != nil {
		return err
	}
	if !ok {
		return NewAuthorizationError("%s permission required", required)
	}
	return nil
}

// HasPermission reports whether the account holds every right in required
// in at least one group
func (r *Resolver) HasPermission(ctx context.Context, accountID string, required rights.Set) (bool, error) {
	memberships, err := r.members.MembershipsByAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	for _, member := range memberships {
		if member.Rights.Has(required) {
			return true, nil
		}
	}
	return false, nil
}

// ConfirmPermission returns an AuthorizationError unless the account holds
// every right in required in at least one group
func (r *Resolver) ConfirmPermission(ctx context.Context, accountID string, required rights.Set) error {
	ok, err := r.HasPermission(ctx, accountID, required)
	if err != nil {
		return err
	}
	if !ok {
		return NewAuthorizationError("%s permission required", required)
	}
	return nil
}
