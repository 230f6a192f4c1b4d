package model

import "time"

// Group is a tenant boundary owning content and memberships.
type Group struct {
	ID               string    `gorm:"column:id;primaryKey" json:"id"`
	Name             string    `gorm:"column:name;not null" json:"name"`
	RegistrationCode string    `gorm:"column:registration_code;not null" json:"registrationCode"`
	Address          string    `gorm:"column:address;not null" json:"address"`
	Domains          string    `gorm:"column:domains;not null" json:"domains"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Group) TableName() string {
	return "groups"
}
