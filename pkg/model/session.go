package model

import "time"

// Session is the proof of a successful authentication. The token is a
// 64-character alphanumeric string and is never reissued or mutated.
type Session struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Token     string    `gorm:"column:token;uniqueIndex;not null" json:"token"`
	AccountID string    `gorm:"column:account_id;not null" json:"account"`
	Method    Method    `gorm:"column:method;not null" json:"method"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Session) TableName() string {
	return "sessions"
}

// ExpiresAt returns the instant the session stops resolving, given the
// configured TTL. A zero ttl means the session never expires.
func (s Session) ExpiresAt(ttl time.Duration) time.Time {
	if ttl == 0 {
		return time.Time{}
	}
	return s.CreatedAt.Add(ttl)
}
