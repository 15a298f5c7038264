package comment

import (
	"context"
	"errors"

	"github.com/lostblog/blog-backend/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// service is the only place with authorization and cross-entity
// aggregation logic. It orchestrates the comment store, the like ledger
// and the post gateway; it never writes to their storage directly.
type service struct {
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
	userRepo    domain.UserRepository
	posts       domain.PostGateway
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, likeRepo domain.LikeRepository, userRepo domain.UserRepository, posts domain.PostGateway) *service {
	return &service{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		posts:       posts,
	}
}

// commentablePost resolves the post and rejects drafts. Comments on drafts
// are disallowed unconditionally, even for the draft's own author.
func (s *service) commentablePost(ctx context.Context, postID int64) (domain.PostInfo, error) {
	info, err := s.posts.Info(ctx, postID)
	if err != nil {
		return domain.PostInfo{}, err
	}
	if info.Draft {
		logrus.Warnf("rejected comment on draft post %d", postID)
		return domain.PostInfo{}, domain.ErrForbidden
	}
	return info, nil
}

func (s *service) Create(ctx context.Context, postID, authorID int64, content string) (*domain.CommentWithStats, error) {
	if _, err := s.commentablePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}
	if err := s.commentRepo.Store(ctx, comment); err != nil {
		return nil, err
	}

	// a brand new comment has no likes and no replies
	return &domain.CommentWithStats{Comment: *comment}, nil
}

func (s *service) CreateReply(ctx context.Context, parentID, authorID int64, content string, replyToUserID int64) (*domain.CommentWithStats, error) {
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.commentablePost(ctx, parent.PostID); err != nil {
		return nil, err
	}

	if replyToUserID != 0 {
		if _, err := s.userRepo.GetByID(ctx, replyToUserID); err != nil {
			return nil, err
		}
	}

	reply := &domain.Comment{
		PostID:        parent.PostID,
		UserID:        authorID,
		Content:       content,
		ParentID:      parentID,
		ReplyToUserID: replyToUserID,
	}
	if err := s.commentRepo.Store(ctx, reply); err != nil {
		return nil, err
	}

	return &domain.CommentWithStats{Comment: *reply}, nil
}

func (s *service) Update(ctx context.Context, commentID, requesterID int64, content string) (*domain.CommentWithStats, error) {
	updated, err := s.commentRepo.Update(ctx, commentID, content, requesterID)
	if err != nil {
		return nil, err
	}

	res := &domain.CommentWithStats{Comment: *updated}
	res.LikeCount, err = s.likeRepo.Count(ctx, domain.CommentSubject(commentID))
	if err != nil {
		return nil, err
	}
	res.Liked, err = s.likeRepo.IsLiked(ctx, domain.CommentSubject(commentID), requesterID)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, commentID, requesterID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	var postOwnerID int64
	info, err := s.posts.Info(ctx, comment.PostID)
	switch {
	case err == nil:
		postOwnerID = info.OwnerID
	case errors.Is(err, domain.ErrNotFound):
		// post already gone; the comment author may still clean up
		logrus.Warnf("deleting comment %d whose post %d no longer exists", commentID, comment.PostID)
	default:
		return err
	}

	return s.commentRepo.Delete(ctx, commentID, requesterID, postOwnerID)
}

func (s *service) FetchByPost(ctx context.Context, postID int64, page, pageSize int, viewerID int64) (domain.Page[*domain.CommentWithStats], error) {
	var res domain.Page[*domain.CommentWithStats]

	if _, err := s.posts.Info(ctx, postID); err != nil {
		return res, err
	}

	comments, total, err := s.commentRepo.FetchTopLevel(ctx, postID, page, pageSize)
	if err != nil {
		return res, err
	}

	items, err := s.assemble(ctx, comments, viewerID, true)
	if err != nil {
		return res, err
	}

	res = domain.Page[*domain.CommentWithStats]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}
	return res, nil
}

func (s *service) FetchReplies(ctx context.Context, parentID int64, page, pageSize int, viewerID int64) (domain.Page[*domain.CommentWithStats], error) {
	var res domain.Page[*domain.CommentWithStats]

	if _, err := s.commentRepo.GetByID(ctx, parentID); err != nil {
		return res, err
	}

	replies, total, err := s.commentRepo.FetchReplies(ctx, parentID, page, pageSize)
	if err != nil {
		return res, err
	}

	items, err := s.assemble(ctx, replies, viewerID, false)
	if err != nil {
		return res, err
	}

	res = domain.Page[*domain.CommentWithStats]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}
	return res, nil
}

func (s *service) FetchByAuthor(ctx context.Context, userID int64, page, pageSize int) (domain.Page[*domain.CommentWithStats], error) {
	var res domain.Page[*domain.CommentWithStats]

	comments, total, err := s.commentRepo.FetchByAuthor(ctx, userID, page, pageSize)
	if err != nil {
		return res, err
	}

	items, err := s.assemble(ctx, comments, userID, false)
	if err != nil {
		return res, err
	}
	s.fillPostTitles(ctx, items)

	res = domain.Page[*domain.CommentWithStats]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}
	return res, nil
}

func (s *service) CountByPost(ctx context.Context, postID int64) (int64, error) {
	if _, err := s.posts.Info(ctx, postID); err != nil {
		return 0, err
	}
	return s.commentRepo.CountByPost(ctx, postID)
}

// assemble attaches like counts, the viewer's liked flags, author details
// and (for top-level listings) transitive reply counts to a page of
// comments. Every aggregate is batch-fetched keyed by the page's comment
// IDs; nothing here runs one query per comment.
func (s *service) assemble(ctx context.Context, comments []*domain.Comment, viewerID int64, withReplyCount bool) ([]*domain.CommentWithStats, error) {
	items := make([]*domain.CommentWithStats, len(comments))
	if len(comments) == 0 {
		return items, nil
	}

	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	var (
		likeCounts  map[int64]int64
		likedFlags  map[int64]bool
		replyCounts map[int64]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		likeCounts, err = s.likeRepo.CountBatch(gctx, domain.SubjectComment, ids)
		return
	})
	g.Go(func() (err error) {
		likedFlags, err = s.likeRepo.IsLikedBatch(gctx, domain.SubjectComment, ids, viewerID)
		return
	})
	if withReplyCount {
		g.Go(func() (err error) {
			replyCounts, err = s.commentRepo.CountDescendantsBatch(gctx, ids)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.fillUserDetails(ctx, comments); err != nil {
		return nil, err
	}

	for i, c := range comments {
		item := &domain.CommentWithStats{
			Comment:   *c,
			LikeCount: likeCounts[c.ID],
			Liked:     likedFlags[c.ID],
		}
		if withReplyCount {
			n := replyCounts[c.ID]
			item.ReplyCount = &n
		}
		items[i] = item
	}
	return items, nil
}

// fillUserDetails merges author info into the page with one batch lookup
// over the distinct author IDs.
func (s *service) fillUserDetails(ctx context.Context, comments []*domain.Comment) error {
	seen := make(map[int64]bool, len(comments))
	uids := make([]int64, 0, len(comments))
	for _, c := range comments {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			uids = append(uids, c.UserID)
		}
	}
	if len(uids) == 0 {
		return nil
	}

	users, err := s.userRepo.GetByIDs(ctx, uids)
	if err != nil {
		return err
	}

	byID := make(map[int64]domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = users[i]
	}
	for _, c := range comments {
		if u, ok := byID[c.UserID]; ok {
			user := u
			c.User = &user
		}
	}
	return nil
}

// fillPostTitles annotates a cross-post listing with post titles. Best
// effort: a post deleted since the comment was written just keeps an
// empty title.
func (s *service) fillPostTitles(ctx context.Context, items []*domain.CommentWithStats) {
	titles := make(map[int64]string)
	for _, item := range items {
		if _, ok := titles[item.PostID]; ok {
			continue
		}
		info, err := s.posts.Info(ctx, item.PostID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logrus.Warnf("failed to resolve post %d for comment listing: %v", item.PostID, err)
			}
			titles[item.PostID] = ""
			continue
		}
		titles[item.PostID] = info.Title
	}
	for _, item := range items {
		item.PostTitle = titles[item.PostID]
	}
}
