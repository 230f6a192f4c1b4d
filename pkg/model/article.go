package model

import "time"

// Article is a blog-style post owned by a group. Unpublished articles are
// visible only through the group-scoped listing.
type Article struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	GroupID   string    `gorm:"column:group_id;not null" json:"group"`
	AuthorID  string    `gorm:"column:author_id;not null" json:"authorId"`
	Author    string    `gorm:"column:author;not null" json:"author"`
	Header    string    `gorm:"column:header;not null" json:"header"`
	Markdown  string    `gorm:"column:markdown;not null" json:"markdown"`
	Read      int64     `gorm:"column:read;not null;default:0" json:"read"`
	Domain    string    `gorm:"column:domain" json:"domain,omitempty"`
	Publish   bool      `gorm:"column:publish;not null;default:false" json:"publish"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Article) TableName() string {
	return "articles"
}
