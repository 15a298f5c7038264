package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/lostblog/blog-backend/domain"
)

func TestLikeRepository_Like(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE subject_kind = \\? AND subject_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectCommit()

	count, err := repo.Like(context.Background(), 7, domain.PostSubject(2))
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_LikeTwiceKeepsCount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	// 第二次点赞命中唯一索引, 插入不生效但计数照常返回
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE subject_kind = \\? AND subject_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectCommit()

	count, err := repo.Like(context.Background(), 7, domain.PostSubject(2))
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_Unlike(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes` WHERE user_id = \\? AND subject_kind = \\? AND subject_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE subject_kind = \\? AND subject_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	count, err := repo.Unlike(context.Background(), 7, domain.CommentSubject(5))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_UnlikeNeverLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes` WHERE user_id = \\? AND subject_kind = \\? AND subject_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE subject_kind = \\? AND subject_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	count, err := repo.Unlike(context.Background(), 8, domain.CommentSubject(5))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_CountBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery("SELECT subject_id, COUNT\\(\\*\\) AS cnt FROM `likes` WHERE subject_kind = \\? AND subject_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "cnt"}).
			AddRow(10, 2).
			AddRow(12, 5))

	counts, err := repo.CountBatch(context.Background(), domain.SubjectComment, []int64{10, 11, 12})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts[10])
	assert.Equal(t, int64(0), counts[11])
	assert.Equal(t, int64(5), counts[12])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_IsLikedAnonymous(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	liked, err := repo.IsLiked(context.Background(), domain.PostSubject(2), domain.AnonymousUserID)
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_IsLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE user_id = \\? AND subject_kind = \\? AND subject_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.IsLiked(context.Background(), domain.PostSubject(2), 7)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_IsLikedBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery("SELECT `subject_id` FROM `likes` WHERE user_id = \\? AND subject_kind = \\? AND subject_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id"}).AddRow(10))

	liked, err := repo.IsLikedBatch(context.Background(), domain.SubjectComment, []int64{10, 11}, 7)
	assert.NoError(t, err)
	assert.True(t, liked[10])
	assert.False(t, liked[11])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_IsLikedBatchAnonymous(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	liked, err := repo.IsLikedBatch(context.Background(), domain.SubjectComment, []int64{10, 11}, domain.AnonymousUserID)
	assert.NoError(t, err)
	assert.False(t, liked[10])
	assert.False(t, liked[11])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_DeleteAllFor(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes` WHERE subject_kind = \\? AND subject_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.DeleteAllFor(context.Background(), domain.PostSubject(2))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
