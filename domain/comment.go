package domain

import (
	"context"
	"time"
)

const (
	// CommentMinLen and CommentMaxLen bound the comment body, counted in runes.
	CommentMinLen = 1
	CommentMaxLen = 3000

	// DefaultMaxNestingLevel is used when no nesting level is configured.
	// Level 0 is a top-level comment, so the default allows replies up to level 3.
	DefaultMaxNestingLevel = 3
)

// Comment is one node of a post's comment tree.
// ParentID and ReplyToUserID use 0 as the "not set" value:
// a comment is top-level iff ParentID == 0 iff Level == 0.
type Comment struct {
	ID            int64      `json:"id"`
	PostID        int64      `json:"post_id"`
	UserID        int64      `json:"user_id"`
	Content       string     `json:"content"`
	ParentID      int64      `json:"parent_id"`
	ReplyToUserID int64      `json:"reply_to_user_id,omitempty"`
	Level         int        `json:"level"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
}

// CommentWithStats is a comment annotated with the aggregates a listing needs.
// ReplyCount is only present on top-level listings.
type CommentWithStats struct {
	Comment
	PostTitle  string
	LikeCount  int64
	Liked      bool
	ReplyCount *int64
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, postID, authorID int64, content string) (*CommentWithStats, error)
	CreateReply(ctx context.Context, parentID, authorID int64, content string, replyToUserID int64) (*CommentWithStats, error)
	Update(ctx context.Context, commentID, requesterID int64, content string) (*CommentWithStats, error)
	Delete(ctx context.Context, commentID, requesterID int64) error
	FetchByPost(ctx context.Context, postID int64, page, pageSize int, viewerID int64) (Page[*CommentWithStats], error)
	FetchReplies(ctx context.Context, parentID int64, page, pageSize int, viewerID int64) (Page[*CommentWithStats], error)
	FetchByAuthor(ctx context.Context, userID int64, page, pageSize int) (Page[*CommentWithStats], error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}

// CommentRepository 数据存取接口. It owns the structural invariants of the
// tree: body length, level computation and the cascading delete.
type CommentRepository interface {
	// Store persists a new comment. When ParentID is set the level is
	// computed from the parent inside the same transaction; a caller
	// supplied PostID that disagrees with the parent's fails with
	// ErrBadParamInput and a level beyond the limit with ErrNestingTooDeep.
	Store(ctx context.Context, c *Comment) error

	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Update replaces the body. Only the comment's author may update.
	Update(ctx context.Context, id int64, content string, requesterID int64) (*Comment, error)

	// Delete removes the comment, its whole descendant subtree and every
	// like row referencing any of them, atomically. Authorized for the
	// comment author or the post owner.
	Delete(ctx context.Context, id, requesterID, postOwnerID int64) error

	// FetchTopLevel 获取一级评论, ordered by created_at then id ascending.
	// Returns the page slice plus the total number of top-level comments.
	FetchTopLevel(ctx context.Context, postID int64, page, pageSize int) ([]*Comment, int64, error)
	// FetchReplies 获取直接子回复 (direct children only)
	FetchReplies(ctx context.Context, parentID int64, page, pageSize int) ([]*Comment, int64, error)
	FetchByAuthor(ctx context.Context, userID int64, page, pageSize int) ([]*Comment, int64, error)

	// CountDescendants counts the whole subtree below a comment,
	// not just direct children.
	CountDescendants(ctx context.Context, id int64) (int64, error)
	CountDescendantsBatch(ctx context.Context, ids []int64) (map[int64]int64, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}
