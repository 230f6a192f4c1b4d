package model

import (
	"time"

	"github.com/cairncms/cairn/pkg/rights"
)

// Member is the join record between an account and a group. It is the sole
// source of truth for what the account may do inside the group; at most one
// row per (group, account) pair is meaningful.
type Member struct {
	ID        string     `gorm:"column:id;primaryKey" json:"id"`
	GroupID   string     `gorm:"column:group_id;not null;uniqueIndex:idx_members_group_account" json:"group"`
	AccountID string     `gorm:"column:account_id;not null;uniqueIndex:idx_members_group_account" json:"account"`
	Rights    rights.Set `gorm:"column:rights;not null" json:"rights"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Member) TableName() string {
	return "members"
}
