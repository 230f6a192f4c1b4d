package model

import "time"

// Comment belongs to an article. Anonymous comments carry an empty
// AuthorID and start out non-public until a group writer approves them.
type Comment struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	ArticleID string    `gorm:"column:article_id;not null" json:"article"`
	AuthorID  string    `gorm:"column:author_id" json:"authorId,omitempty"`
	Author    string    `gorm:"column:author" json:"author,omitempty"`
	Body      string    `gorm:"column:body;not null" json:"body"`
	Public    bool      `gorm:"column:public;not null;default:false" json:"public"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// Authenticated reports whether the comment was written by a signed-in
// account.
func (c Comment) Authenticated() bool {
	return c.AuthorID != ""
}
