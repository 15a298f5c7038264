package response

import "github.com/lostblog/blog-backend/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Comment struct {
	ID            int64  `json:"id"`
	PostID        int64  `json:"post_id"`
	PostTitle     string `json:"post_title,omitempty"`
	UserID        int64  `json:"user_id"`
	Content       string `json:"content"`
	ParentID      int64  `json:"parent_id"`
	ReplyToUserID int64  `json:"reply_to_user_id,omitempty"`
	Level         int    `json:"level"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at,omitempty"`

	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"liked"`
	// ReplyCount counts the whole subtree; only top-level listings carry it
	ReplyCount *int64 `json:"reply_count,omitempty"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
}

// CommentPage is the paginated envelope every comment listing uses.
type CommentPage struct {
	Items      []*Comment `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int64      `json:"total_count"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.CommentWithStats) *Comment {
	if c == nil {
		return nil
	}
	res := &Comment{
		ID:            c.ID,
		PostID:        c.PostID,
		PostTitle:     c.PostTitle,
		UserID:        c.UserID,
		Content:       c.Content,
		ParentID:      c.ParentID,
		ReplyToUserID: c.ReplyToUserID,
		Level:         c.Level,
		CreatedAt:     c.CreatedAt.Format(DateTimeFormat),
		LikeCount:     c.LikeCount,
		Liked:         c.Liked,
		ReplyCount:    c.ReplyCount,
		User:          NewUserFromDomain(c.User),
	}
	if c.UpdatedAt != nil {
		res.UpdatedAt = c.UpdatedAt.Format(DateTimeFormat)
	}
	return res
}

func NewCommentPageFromDomain(p domain.Page[*domain.CommentWithStats]) CommentPage {
	items := make([]*Comment, len(p.Items))
	for i := range p.Items {
		items[i] = NewCommentFromDomain(p.Items[i])
	}
	return CommentPage{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
}
