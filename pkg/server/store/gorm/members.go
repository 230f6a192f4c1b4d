package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure MembersStore implements store.MembersStore
var _ store.MembersStore = (*MembersStore)(nil)

// MembersStore implements store.MembersStore using GORM
type MembersStore struct {
	db *gorm.DB
}

// NewMembersStore creates a new MembersStore
func NewMembersStore(db *gorm.DB) *MembersStore {
	return &MembersStore{db: db}
}

// MemberByGroupAndAccount retrieves the unique membership row for the pair
func (s *MembersStore) MemberByGroupAndAccount(ctx context.Context, groupID, accountID string) (*model.Member, error) {
	var member model.Member
	tx := s.db.WithContext(ctx).Where("group_id = ? AND account_id = ?", groupID, accountID).First(&member)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &member, nil
}

// MembersByGroup lists all memberships of a group
func (s *MembersStore) MembersByGroup(ctx context.Context, groupID string) ([]model.Member, error) {
	var members []model.Member
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("created_at").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// MembershipsByAccount lists all groups an account belongs to
func (s *MembersStore) MembershipsByAccount(ctx context.Context, accountID string) ([]model.Member, error) {
	var members []model.Member
	if err := s.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// AddMember persists a new membership row
func (s *MembersStore) AddMember(ctx context.Context, member *model.Member) error {
	return s.db.WithContext(ctx).Create(member).Error
}

// UpdateMemberRights replaces the rights of an existing membership
func (s *MembersStore) UpdateMemberRights(ctx context.Context, groupID, accountID string, set rights.Set) (*model.Member, error) {
	tx := s.db.WithContext(ctx).Model(&model.Member{}).
		Where("group_id = ? AND account_id = ?", groupID, accountID).
		Update("rights", set)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.MemberByGroupAndAccount(ctx, groupID, accountID)
}

// DeleteMember removes a membership
func (s *MembersStore) DeleteMember(ctx context.Context, groupID, accountID string) error {
	res := s.db.WithContext(ctx).Where("group_id = ? AND account_id = ?", groupID, accountID).Delete(&model.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
