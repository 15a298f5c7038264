package mysql

import (
	"context"

	"github.com/lostblog/blog-backend/domain"
	"github.com/lostblog/blog-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

// Like inserts through the composite unique key with ON CONFLICT DO
// NOTHING, so two racing likes from one user can never produce two rows.
// The returned count is always derived from the rows in the same
// transaction, never from a stored counter.
func (l *likeRepository) Like(ctx context.Context, userID int64, subject domain.LikeSubject) (int64, error) {
	row := model.Like{
		UserID:      userID,
		SubjectKind: string(subject.Kind),
		SubjectID:   subject.ID,
	}

	var count int64
	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			return err
		}
		return l.countSubject(tx, subject, &count)
	})
	return count, err
}

// Unlike deletes the row if present. Unliking something never liked is a
// designed no-op that still reports the current count.
func (l *likeRepository) Unlike(ctx context.Context, userID int64, subject domain.LikeSubject) (int64, error) {
	var count int64
	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND subject_kind = ? AND subject_id = ?",
			userID, string(subject.Kind), subject.ID).
			Delete(&model.Like{}).Error
		if err != nil {
			return err
		}
		return l.countSubject(tx, subject, &count)
	})
	return count, err
}

func (l *likeRepository) countSubject(tx *gorm.DB, subject domain.LikeSubject, count *int64) error {
	return tx.Model(&model.Like{}).
		Where("subject_kind = ? AND subject_id = ?", string(subject.Kind), subject.ID).
		Count(count).Error
}

func (l *likeRepository) Count(ctx context.Context, subject domain.LikeSubject) (int64, error) {
	var count int64
	err := l.countSubject(l.DB.WithContext(ctx), subject, &count)
	return count, err
}

// CountBatch fetches like counts for a whole page of subjects in one
// GROUP BY query, zero-filling subjects without likes.
func (l *likeRepository) CountBatch(ctx context.Context, kind domain.SubjectKind, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	for _, id := range ids {
		counts[id] = 0
	}

	var rows []struct {
		SubjectID int64 `gorm:"column:subject_id"`
		Cnt       int64 `gorm:"column:cnt"`
	}
	err := l.DB.WithContext(ctx).Model(&model.Like{}).
		Select("subject_id, COUNT(*) AS cnt").
		Where("subject_kind = ? AND subject_id IN ?", string(kind), ids).
		Group("subject_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.SubjectID] = row.Cnt
	}
	return counts, nil
}

func (l *likeRepository) IsLiked(ctx context.Context, subject domain.LikeSubject, userID int64) (bool, error) {
	if userID == domain.AnonymousUserID {
		return false, nil
	}

	var count int64
	err := l.DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND subject_kind = ? AND subject_id = ?",
			userID, string(subject.Kind), subject.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsLikedBatch answers the liked flag for a page of subjects with one IN
// query. The anonymous viewer gets an all-false map without touching
// storage.
func (l *likeRepository) IsLikedBatch(ctx context.Context, kind domain.SubjectKind, ids []int64, userID int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(ids))
	for _, id := range ids {
		liked[id] = false
	}
	if userID == domain.AnonymousUserID || len(ids) == 0 {
		return liked, nil
	}

	var likedIDs []int64
	err := l.DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND subject_kind = ? AND subject_id IN ?", userID, string(kind), ids).
		Pluck("subject_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	for _, id := range likedIDs {
		liked[id] = true
	}
	return liked, nil
}

func (l *likeRepository) DeleteAllFor(ctx context.Context, subject domain.LikeSubject) error {
	return l.DB.WithContext(ctx).
		Where("subject_kind = ? AND subject_id = ?", string(subject.Kind), subject.ID).
		Delete(&model.Like{}).Error
}
