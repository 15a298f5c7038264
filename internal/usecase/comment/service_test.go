package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lostblog/blog-backend/domain"
	"github.com/lostblog/blog-backend/domain/mocks"
	"github.com/lostblog/blog-backend/internal/usecase/comment"
)

func newMocks() (*mocks.CommentRepository, *mocks.LikeRepository, *mocks.UserRepository, *mocks.PostGateway) {
	return new(mocks.CommentRepository), new(mocks.LikeRepository), new(mocks.UserRepository), new(mocks.PostGateway)
}

func TestService_Create(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	content := faker.Sentence()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, OwnerID: 9}, nil).Once()
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Comment)
			c.ID = 10
			c.CreatedAt = time.Now()
		}).
		Return(nil).Once()

	res, err := svc.Create(context.Background(), 2, 7, content)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.ID)
	assert.Equal(t, int64(2), res.PostID)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, content, res.Content)
	assert.Zero(t, res.LikeCount)
	assert.Nil(t, res.ReplyCount)
	commentRepo.AssertExpectations(t)
	posts.AssertExpectations(t)
}

func TestService_CreateOnDraft(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	// draft 的作者也不能评论自己的草稿
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, OwnerID: 7, Draft: true}, nil).Once()

	_, err := svc.Create(context.Background(), 2, 7, "hello")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	posts.AssertExpectations(t)
}

func TestService_CreatePostNotFound(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	posts.On("Info", mock.Anything, int64(404)).
		Return(domain.PostInfo{}, domain.ErrNotFound).Once()

	_, err := svc.Create(context.Background(), 404, 7, "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestService_CreateReply(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	parent := &domain.Comment{ID: 5, PostID: 2, UserID: 9, Content: "parent"}
	commentRepo.On("GetByID", mock.Anything, int64(5)).Return(parent, nil).Once()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, OwnerID: 9}, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(9)).
		Return(domain.User{ID: 9, Username: "author"}, nil).Once()
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Comment)
			c.ID = 11
			c.Level = 1
			c.CreatedAt = time.Now()
		}).
		Return(nil).Once()

	res, err := svc.CreateReply(context.Background(), 5, 7, "reply", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, int64(5), res.ParentID)
	assert.Equal(t, int64(9), res.ReplyToUserID)
	assert.Equal(t, 1, res.Level)
	commentRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestService_CreateReplyParentMissing(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	commentRepo.On("GetByID", mock.Anything, int64(404)).
		Return(nil, domain.ErrNotFound).Once()

	_, err := svc.CreateReply(context.Background(), 404, 7, "reply", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestService_CreateReplyUnknownReplyToUser(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	parent := &domain.Comment{ID: 5, PostID: 2, UserID: 9, Content: "parent"}
	commentRepo.On("GetByID", mock.Anything, int64(5)).Return(parent, nil).Once()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, OwnerID: 9}, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(999)).
		Return(domain.User{}, domain.ErrNotFound).Once()

	_, err := svc.CreateReply(context.Background(), 5, 7, "reply", 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	updatedAt := time.Now()
	updated := &domain.Comment{ID: 5, PostID: 2, UserID: 7, Content: "after", UpdatedAt: &updatedAt}
	commentRepo.On("Update", mock.Anything, int64(5), "after", int64(7)).
		Return(updated, nil).Once()
	likeRepo.On("Count", mock.Anything, domain.CommentSubject(5)).Return(int64(3), nil).Once()
	likeRepo.On("IsLiked", mock.Anything, domain.CommentSubject(5), int64(7)).Return(true, nil).Once()

	res, err := svc.Update(context.Background(), 5, 7, "after")
	require.NoError(t, err)
	assert.Equal(t, "after", res.Content)
	assert.Equal(t, int64(3), res.LikeCount)
	assert.True(t, res.Liked)
	commentRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Comment{ID: 5, PostID: 2, UserID: 7}, nil).Once()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, OwnerID: 9}, nil).Once()
	commentRepo.On("Delete", mock.Anything, int64(5), int64(7), int64(9)).
		Return(nil).Once()

	err := svc.Delete(context.Background(), 5, 7)
	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
	posts.AssertExpectations(t)
}

func TestService_DeleteWhenPostGone(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	// 帖子没了, 评论作者仍可清理自己的评论
	commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Comment{ID: 5, PostID: 2, UserID: 7}, nil).Once()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{}, domain.ErrNotFound).Once()
	commentRepo.On("Delete", mock.Anything, int64(5), int64(7), int64(0)).
		Return(nil).Once()

	err := svc.Delete(context.Background(), 5, 7)
	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestService_DeleteGatewayDown(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Comment{ID: 5, PostID: 2, UserID: 7}, nil).Once()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{}, domain.ErrUnavailable).Once()

	err := svc.Delete(context.Background(), 5, 7)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_FetchByPost(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	listed := []*domain.Comment{
		{ID: 1, PostID: 2, UserID: 7, Content: "first"},
		{ID: 3, PostID: 2, UserID: 8, Content: "second"},
	}
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, OwnerID: 9}, nil).Once()
	commentRepo.On("FetchTopLevel", mock.Anything, int64(2), 1, 20).
		Return(listed, int64(5), nil).Once()
	likeRepo.On("CountBatch", mock.Anything, domain.SubjectComment, []int64{1, 3}).
		Return(map[int64]int64{1: 4, 3: 0}, nil).Once()
	likeRepo.On("IsLikedBatch", mock.Anything, domain.SubjectComment, []int64{1, 3}, int64(7)).
		Return(map[int64]bool{1: true, 3: false}, nil).Once()
	commentRepo.On("CountDescendantsBatch", mock.Anything, []int64{1, 3}).
		Return(map[int64]int64{1: 2, 3: 0}, nil).Once()
	userRepo.On("GetByIDs", mock.Anything, []int64{7, 8}).
		Return([]domain.User{{ID: 7, Username: "alice"}, {ID: 8, Username: "bob"}}, nil).Once()

	page, err := svc.FetchByPost(context.Background(), 2, 1, 20, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalCount)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	require.Len(t, page.Items, 2)

	first := page.Items[0]
	assert.Equal(t, int64(4), first.LikeCount)
	assert.True(t, first.Liked)
	require.NotNil(t, first.ReplyCount)
	assert.Equal(t, int64(2), *first.ReplyCount)
	require.NotNil(t, first.User)
	assert.Equal(t, "alice", first.User.Username)

	second := page.Items[1]
	assert.False(t, second.Liked)
	require.NotNil(t, second.ReplyCount)
	assert.Equal(t, int64(0), *second.ReplyCount)
	commentRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestService_FetchByPostEmptyPage(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2}, nil).Once()
	commentRepo.On("FetchTopLevel", mock.Anything, int64(2), 9, 20).
		Return([]*domain.Comment{}, int64(5), nil).Once()

	page, err := svc.FetchByPost(context.Background(), 2, 9, 20, domain.AnonymousUserID)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(5), page.TotalCount)
	likeRepo.AssertNotCalled(t, "CountBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_FetchReplies(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	replies := []*domain.Comment{
		{ID: 6, PostID: 2, UserID: 8, Content: "reply", ParentID: 5, Level: 1},
	}
	commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Comment{ID: 5, PostID: 2, UserID: 9}, nil).Once()
	commentRepo.On("FetchReplies", mock.Anything, int64(5), 1, 20).
		Return(replies, int64(1), nil).Once()
	likeRepo.On("CountBatch", mock.Anything, domain.SubjectComment, []int64{6}).
		Return(map[int64]int64{6: 1}, nil).Once()
	likeRepo.On("IsLikedBatch", mock.Anything, domain.SubjectComment, []int64{6}, domain.AnonymousUserID).
		Return(map[int64]bool{6: false}, nil).Once()
	userRepo.On("GetByIDs", mock.Anything, []int64{8}).
		Return([]domain.User{{ID: 8, Username: "bob"}}, nil).Once()

	page, err := svc.FetchReplies(context.Background(), 5, 1, 20, domain.AnonymousUserID)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	// 回复列表不带子回复计数
	assert.Nil(t, page.Items[0].ReplyCount)
	commentRepo.AssertNotCalled(t, "CountDescendantsBatch", mock.Anything, mock.Anything)
}

func TestService_FetchRepliesParentMissing(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	commentRepo.On("GetByID", mock.Anything, int64(404)).
		Return(nil, domain.ErrNotFound).Once()

	_, err := svc.FetchReplies(context.Background(), 404, 1, 20, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "FetchReplies", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_FetchByAuthor(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	listed := []*domain.Comment{
		{ID: 1, PostID: 2, UserID: 7, Content: "on post 2"},
		{ID: 4, PostID: 3, UserID: 7, Content: "on post 3"},
	}
	commentRepo.On("FetchByAuthor", mock.Anything, int64(7), 1, 20).
		Return(listed, int64(2), nil).Once()
	likeRepo.On("CountBatch", mock.Anything, domain.SubjectComment, []int64{1, 4}).
		Return(map[int64]int64{1: 0, 4: 0}, nil).Once()
	likeRepo.On("IsLikedBatch", mock.Anything, domain.SubjectComment, []int64{1, 4}, int64(7)).
		Return(map[int64]bool{1: false, 4: false}, nil).Once()
	userRepo.On("GetByIDs", mock.Anything, []int64{7}).
		Return([]domain.User{{ID: 7, Username: "alice"}}, nil).Once()
	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2, Title: "hello"}, nil).Once()
	// 已删除的帖子只留空标题
	posts.On("Info", mock.Anything, int64(3)).
		Return(domain.PostInfo{}, domain.ErrNotFound).Once()

	page, err := svc.FetchByAuthor(context.Background(), 7, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "hello", page.Items[0].PostTitle)
	assert.Equal(t, "", page.Items[1].PostTitle)
	posts.AssertExpectations(t)
}

func TestService_CountByPost(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	posts.On("Info", mock.Anything, int64(2)).
		Return(domain.PostInfo{ID: 2}, nil).Once()
	commentRepo.On("CountByPost", mock.Anything, int64(2)).
		Return(int64(42), nil).Once()

	count, err := svc.CountByPost(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestService_CountByPostNotFound(t *testing.T) {
	commentRepo, likeRepo, userRepo, posts := newMocks()
	svc := comment.NewService(commentRepo, likeRepo, userRepo, posts)

	posts.On("Info", mock.Anything, int64(404)).
		Return(domain.PostInfo{}, domain.ErrNotFound).Once()

	_, err := svc.CountByPost(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "CountByPost", mock.Anything, mock.Anything)
}
