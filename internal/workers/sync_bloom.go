package workers

import (
	"context"
	"time"

	"github.com/lostblog/blog-backend/domain"
	"github.com/sirupsen/logrus"
)

const (
	flushInterval  = time.Second
	batchSize      = 256
	rebuildPageLen = 1000
)

// syncBloomWorker keeps the post-ID bloom filter warm. IDs observed at
// read time arrive over the channel and are flushed in batches; a slower
// ticker rebuilds the whole filter from the database so posts created by
// the post subsystem become visible without a restart.
type syncBloomWorker struct {
	posts           domain.PostDBRepository
	bloom           domain.BloomRepository
	ch              chan int64
	rebuildInterval time.Duration
}

var _ domain.BloomSyncWorker = (*syncBloomWorker)(nil)

func NewSyncBloomWorker(posts domain.PostDBRepository, bloom domain.BloomRepository, rebuildInterval time.Duration) *syncBloomWorker {
	return &syncBloomWorker{
		posts:           posts,
		bloom:           bloom,
		ch:              make(chan int64, 1024),
		rebuildInterval: rebuildInterval,
	}
}

func (s *syncBloomWorker) Send(postID int64) {
	select {
	case s.ch <- postID:
	default:
		logrus.Info("SyncBloomWorker's channel is full, id dropped")
	}
}

func (s *syncBloomWorker) Start(ctx context.Context) {
	flushTicker := time.NewTicker(flushInterval)
	defer flushTicker.Stop()
	rebuildTicker := time.NewTicker(s.rebuildInterval)
	defer rebuildTicker.Stop()

	batch := make([]int64, 0, batchSize)
	for {
		select {
		case id := <-s.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-flushTicker.C:
			s.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-rebuildTicker.C:
			s.rebuild(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down SyncBloomWorker, flushing remaining ids...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *syncBloomWorker) flush(ctx context.Context, batch []int64) {
	if len(batch) == 0 {
		return
	}
	if err := s.bloom.BulkAdd(ctx, batch); err != nil {
		logrus.Errorf("failed to add ids to bloom filter: %v", err)
	}
}

func (s *syncBloomWorker) rebuild(ctx context.Context) {
	var cursor int64
	for {
		ids, err := s.posts.FetchIDs(ctx, cursor, rebuildPageLen)
		if err != nil {
			logrus.Errorf("failed to fetch post ids for bloom rebuild: %v", err)
			return
		}
		if len(ids) == 0 {
			return
		}
		s.flush(ctx, ids)
		cursor = ids[len(ids)-1]
	}
}
