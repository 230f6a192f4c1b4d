package model

import (
	"time"

	"github.com/lib/pq"
)

// Account represents a registered identity. Password holds the bcrypt hash
// and is empty for federated accounts; every read path that hands an account
// to a caller must go through Sanitized first.
type Account struct {
	ID             string         `gorm:"column:id;primaryKey" json:"id"`
	Email          string         `gorm:"column:email;uniqueIndex" json:"email"`
	Password       string         `gorm:"column:password" json:"password,omitempty"`
	Username       string         `gorm:"column:username;uniqueIndex" json:"username"`
	Fullname       string         `gorm:"column:fullname" json:"fullname,omitempty"`
	Role           string         `gorm:"column:role;default:none" json:"role"`
	Applications   pq.StringArray `gorm:"column:applications;type:text[]" json:"applications,omitempty"`
	Active         bool           `gorm:"column:active;not null;default:false" json:"active"`
	ActivationCode string         `gorm:"column:activation_code" json:"-"`
	RecoveryCode   string         `gorm:"column:recovery_code" json:"-"`
	Source         string         `gorm:"column:source" json:"source,omitempty"`
	SourceSub      string         `gorm:"column:source_sub" json:"-"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}

// Sanitized returns a copy with the password hash cleared.
func (a Account) Sanitized() *Account {
	a.Password = ""
	return &a
}
