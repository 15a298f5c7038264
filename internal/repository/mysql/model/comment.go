package model

import (
	"time"

	"github.com/lostblog/blog-backend/domain"
)

// Comment rows key the tree by an explicit parent_id instead of object
// references; parent_id = 0 marks a top-level comment.
type Comment struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	PostID        int64      `gorm:"column:post_id;not null;index:idx_post_parent_created,priority:1"`
	UserID        int64      `gorm:"column:user_id;not null;index"`
	Content       string     `gorm:"type:text;not null"`
	ParentID      int64      `gorm:"column:parent_id;not null;default:0;index:idx_post_parent_created,priority:2;index:idx_parent"`
	ReplyToUserID int64      `gorm:"column:reply_to_user_id;not null;default:0"`
	Level         int        `gorm:"column:level;not null;default:0"`
	CreatedAt     time.Time  `gorm:"type:datetime;index:idx_post_parent_created,priority:3"`
	UpdatedAt     *time.Time `gorm:"type:datetime;autoUpdateTime:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:            c.ID,
		PostID:        c.PostID,
		UserID:        c.UserID,
		Content:       c.Content,
		ParentID:      c.ParentID,
		ReplyToUserID: c.ReplyToUserID,
		Level:         c.Level,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:            m.ID,
		PostID:        m.PostID,
		UserID:        m.UserID,
		Content:       m.Content,
		ParentID:      m.ParentID,
		ReplyToUserID: m.ReplyToUserID,
		Level:         m.Level,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
