package mysql

import (
	"context"
	"errors"

	"github.com/lostblog/blog-backend/domain"
	"github.com/lostblog/blog-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

// postRepository reads post facts only; the posts table is owned by the
// post subsystem.
type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostDBRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (m *postRepository) GetInfo(ctx context.Context, postID int64) (domain.PostInfo, error) {
	var post model.Post
	err := m.DB.WithContext(ctx).First(&post, "id = ?", postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PostInfo{}, domain.ErrNotFound
		}
		return domain.PostInfo{}, err
	}
	return post.ToInfo(), nil
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return
}
