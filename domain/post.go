package domain

import "context"

// PostInfo is the read-only fact set the post subsystem exposes to us.
// Post CRUD itself lives outside this service.
type PostInfo struct {
	ID      int64
	OwnerID int64
	Title   string
	Draft   bool
}

// PostGateway answers "does this post exist, who owns it, is it a draft".
// Returns ErrNotFound for absent posts.
type PostGateway interface {
	Info(ctx context.Context, postID int64) (PostInfo, error)
}

// PostDBRepository 数据库操作层 for post facts.
type PostDBRepository interface {
	GetInfo(ctx context.Context, postID int64) (PostInfo, error)

	// FetchIDs pages through post IDs, used to (re)build the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}
