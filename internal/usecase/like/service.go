package like

import (
	"context"

	"github.com/lostblog/blog-backend/domain"
)

// service fronts the like ledger with subject-existence checks. The
// idempotency itself lives in the ledger; repeating a like or unlike is a
// designed no-op, not an error.
type service struct {
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	posts       domain.PostGateway
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(likeRepo domain.LikeRepository, commentRepo domain.CommentRepository, posts domain.PostGateway) *service {
	return &service{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		posts:       posts,
	}
}

func (s *service) postSubject(ctx context.Context, postID int64) (domain.LikeSubject, error) {
	if _, err := s.posts.Info(ctx, postID); err != nil {
		return domain.LikeSubject{}, err
	}
	return domain.PostSubject(postID), nil
}

func (s *service) commentSubject(ctx context.Context, commentID int64) (domain.LikeSubject, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return domain.LikeSubject{}, err
	}
	return domain.CommentSubject(commentID), nil
}

func (s *service) LikePost(ctx context.Context, postID, userID int64) (domain.LikeInfo, error) {
	subject, err := s.postSubject(ctx, postID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	count, err := s.likeRepo.Like(ctx, userID, subject)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return domain.LikeInfo{LikeCount: count, Liked: true}, nil
}

func (s *service) UnlikePost(ctx context.Context, postID, userID int64) (domain.LikeInfo, error) {
	subject, err := s.postSubject(ctx, postID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	count, err := s.likeRepo.Unlike(ctx, userID, subject)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return domain.LikeInfo{LikeCount: count, Liked: false}, nil
}

func (s *service) LikeComment(ctx context.Context, commentID, userID int64) (domain.LikeInfo, error) {
	subject, err := s.commentSubject(ctx, commentID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	count, err := s.likeRepo.Like(ctx, userID, subject)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return domain.LikeInfo{LikeCount: count, Liked: true}, nil
}

func (s *service) UnlikeComment(ctx context.Context, commentID, userID int64) (domain.LikeInfo, error) {
	subject, err := s.commentSubject(ctx, commentID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	count, err := s.likeRepo.Unlike(ctx, userID, subject)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return domain.LikeInfo{LikeCount: count, Liked: false}, nil
}

func (s *service) PostLikeInfo(ctx context.Context, postID, viewerID int64) (domain.LikeInfo, error) {
	subject, err := s.postSubject(ctx, postID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return s.info(ctx, subject, viewerID)
}

func (s *service) CommentLikeInfo(ctx context.Context, commentID, viewerID int64) (domain.LikeInfo, error) {
	subject, err := s.commentSubject(ctx, commentID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return s.info(ctx, subject, viewerID)
}

func (s *service) info(ctx context.Context, subject domain.LikeSubject, viewerID int64) (domain.LikeInfo, error) {
	count, err := s.likeRepo.Count(ctx, subject)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	liked, err := s.likeRepo.IsLiked(ctx, subject, viewerID)
	if err != nil {
		return domain.LikeInfo{}, err
	}
	return domain.LikeInfo{LikeCount: count, Liked: liked}, nil
}
