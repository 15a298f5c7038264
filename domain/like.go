package domain

import (
	"context"
	"time"
)

// AnonymousUserID marks an unauthenticated viewer. Liked flags for the
// anonymous viewer are always false and never touch storage.
const AnonymousUserID int64 = 0

// SubjectKind tags what a like points at.
type SubjectKind string

const (
	SubjectPost    SubjectKind = "post"
	SubjectComment SubjectKind = "comment"
)

// LikeSubject is the tagged key of a likeable thing. One ledger handles
// both posts and comments through it, no duplicated like/unlike logic.
type LikeSubject struct {
	Kind SubjectKind
	ID   int64
}

func PostSubject(id int64) LikeSubject {
	return LikeSubject{Kind: SubjectPost, ID: id}
}

func CommentSubject(id int64) LikeSubject {
	return LikeSubject{Kind: SubjectComment, ID: id}
}

// Like is representing a like record.
// (UserID, Subject) is the identity; at most one row may exist per pair.
type Like struct {
	UserID    int64
	Subject   LikeSubject
	CreatedAt time.Time
}

// LikeInfo is the aggregate a caller gets back from every like operation.
type LikeInfo struct {
	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"liked"`
}

// LikeRepository is the ledger of like facts. Like and Unlike are
// idempotent set-membership toggles: repeating either is a no-op that
// still returns the current count. Counts are always derived by counting
// rows, never kept as a separate counter.
type LikeRepository interface {
	Like(ctx context.Context, userID int64, subject LikeSubject) (int64, error)
	Unlike(ctx context.Context, userID int64, subject LikeSubject) (int64, error)
	Count(ctx context.Context, subject LikeSubject) (int64, error)
	// CountBatch returns a count per subject ID, zero-filled for IDs
	// without likes.
	CountBatch(ctx context.Context, kind SubjectKind, ids []int64) (map[int64]int64, error)
	IsLiked(ctx context.Context, subject LikeSubject, userID int64) (bool, error)
	IsLikedBatch(ctx context.Context, kind SubjectKind, ids []int64, userID int64) (map[int64]bool, error)
	// DeleteAllFor removes every like row for a subject. Used when the
	// subject itself is deleted.
	DeleteAllFor(ctx context.Context, subject LikeSubject) error
}

// LikeUsecase 点赞业务逻辑接口
type LikeUsecase interface {
	LikePost(ctx context.Context, postID, userID int64) (LikeInfo, error)
	UnlikePost(ctx context.Context, postID, userID int64) (LikeInfo, error)
	LikeComment(ctx context.Context, commentID, userID int64) (LikeInfo, error)
	UnlikeComment(ctx context.Context, commentID, userID int64) (LikeInfo, error)
	PostLikeInfo(ctx context.Context, postID, viewerID int64) (LikeInfo, error)
	CommentLikeInfo(ctx context.Context, commentID, viewerID int64) (LikeInfo, error)
}
