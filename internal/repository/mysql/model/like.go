package model

import (
	"time"

	"github.com/lostblog/blog-backend/domain"
)

// Like rows are keyed by (user, subject kind, subject id). The composite
// unique index is what makes double-like impossible under concurrency;
// the application never relies on check-then-insert.
type Like struct {
	UserID      int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_subject,priority:1"`
	SubjectKind string    `gorm:"column:subject_kind;type:varchar(16);not null;uniqueIndex:uk_user_subject,priority:2;index:idx_subject,priority:1"`
	SubjectID   int64     `gorm:"column:subject_id;not null;uniqueIndex:uk_user_subject,priority:3;index:idx_subject,priority:2"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.Like) Like {
	return Like{
		UserID:      l.UserID,
		SubjectKind: string(l.Subject.Kind),
		SubjectID:   l.Subject.ID,
		CreatedAt:   l.CreatedAt,
	}
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		UserID:    m.UserID,
		Subject:   domain.LikeSubject{Kind: domain.SubjectKind(m.SubjectKind), ID: m.SubjectID},
		CreatedAt: m.CreatedAt,
	}
}
