package model

import "time"

// Page is a named page addressable by its unique link.
type Page struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	GroupID   string    `gorm:"column:group_id;not null" json:"group"`
	AuthorID  string    `gorm:"column:author_id;not null" json:"author"`
	Name      string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Link      string    `gorm:"column:link;uniqueIndex;not null" json:"link"`
	Markdown  string    `gorm:"column:markdown" json:"markdown,omitempty"`
	Icon      string    `gorm:"column:icon" json:"icon,omitempty"`
	Domain    string    `gorm:"column:domain" json:"domain,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Page) TableName() string {
	return "pages"
}
