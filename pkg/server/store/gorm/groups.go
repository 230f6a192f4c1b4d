package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure GroupsStore implements store.GroupsStore
var _ store.GroupsStore = (*GroupsStore)(nil)

// GroupsStore implements store.GroupsStore using GORM
type GroupsStore struct {
	db *gorm.DB
}

// NewGroupsStore creates a new GroupsStore
func NewGroupsStore(db *gorm.DB) *GroupsStore {
	return &GroupsStore{db: db}
}

// CreateGroupWithOwner persists the group and its owning membership inside
// one transaction.
func (s *GroupsStore) CreateGroupWithOwner(ctx context.Context, group *model.Group, owner *model.Member) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		owner.GroupID = group.ID
		return tx.Create(owner).Error
	})
}

// GroupByID retrieves a group by id
func (s *GroupsStore) GroupByID(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&group)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &group, nil
}

// ListGroups returns all groups
func (s *GroupsStore) ListGroups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := s.db.WithContext(ctx).Order("created_at").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateGroup persists changed group fields and returns the updated row
func (s *GroupsStore) UpdateGroup(ctx context.Context, group *model.Group) (*model.Group, error) {
	tx := s.db.WithContext(ctx).Model(&model.Group{}).Where("id = ?", group.ID).Updates(map[string]interface{}{
		"name":              group.Name,
		"registration_code": group.RegistrationCode,
		"address":           group.Address,
		"domains":           group.Domains,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.GroupByID(ctx, group.ID)
}

// DeleteGroup removes a group and its memberships in one transaction
func (s *GroupsStore) DeleteGroup(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.Member{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Group{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}
