package domain

import "context"

// BloomSyncWorker keeps the post-ID bloom filter warm: it periodically
// rebuilds the filter from the database and accepts incremental IDs
// observed at read time.
type BloomSyncWorker interface {
	Start(ctx context.Context)

	// Send queues a post ID for addition to the filter. Never blocks;
	// the ID is dropped when the queue is full.
	Send(postID int64)
}
