package repository

import (
	"context"
	"strconv"

	"github.com/lostblog/blog-backend/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// bloomLoadPageSize is the page size used when bulk-loading post IDs into
// the bloom filter.
const bloomLoadPageSize = 1000

// postGateway 协调层: the bloom filter answers "definitely absent" without
// touching MySQL, singleflight collapses concurrent lookups of one post.
type postGateway struct {
	db     domain.PostDBRepository
	bloom  domain.BloomRepository
	warmer domain.BloomSyncWorker
	group  singleflight.Group
}

var _ domain.PostGateway = (*postGateway)(nil)

func NewPostGateway(db domain.PostDBRepository, bloom domain.BloomRepository, warmer domain.BloomSyncWorker) *postGateway {
	return &postGateway{
		db:     db,
		bloom:  bloom,
		warmer: warmer,
	}
}

func (p *postGateway) Info(ctx context.Context, postID int64) (domain.PostInfo, error) {
	exists, err := p.bloom.Exists(ctx, postID)
	if err != nil {
		// bloom trouble must not take reads down; fall through to the DB
		logrus.Warnf("bloom filter check failed for post %d: %v", postID, err)
	} else if !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.PostInfo{}, domain.ErrNotFound
	}

	v, err, _ := p.group.Do(strconv.FormatInt(postID, 10), func() (any, error) {
		return p.db.GetInfo(ctx, postID)
	})
	if err != nil {
		return domain.PostInfo{}, err
	}

	info := v.(domain.PostInfo)
	if p.warmer != nil {
		p.warmer.Send(info.ID)
	}
	return info, nil
}

// InitBloomFilter pages through every post ID and loads them into the
// filter. Called once at startup; the sync worker keeps it fresh afterwards.
func (p *postGateway) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := p.db.FetchIDs(ctx, cursor, bloomLoadPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := p.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
