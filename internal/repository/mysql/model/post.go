package model

import "github.com/lostblog/blog-backend/domain"

// Post is read-only here: the post subsystem owns the table, we only
// consume existence/draft/owner facts from it.
type Post struct {
	ID     int64  `gorm:"primaryKey"`
	UserID int64  `gorm:"column:user_id"`
	Title  string `gorm:"column:title"`
	Draft  bool   `gorm:"column:draft"`
}

func (Post) TableName() string {
	return "posts"
}

func (m *Post) ToInfo() domain.PostInfo {
	return domain.PostInfo{
		ID:      m.ID,
		OwnerID: m.UserID,
		Title:   m.Title,
		Draft:   m.Draft,
	}
}
