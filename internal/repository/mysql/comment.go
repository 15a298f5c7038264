package mysql

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/lostblog/blog-backend/domain"
	"github.com/lostblog/blog-backend/internal/repository"
	"github.com/lostblog/blog-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type commentRepository struct {
	DB *gorm.DB
	// maxNestingLevel is the highest Level a reply may reach; exceeding it
	// is a rejected operation, never a clamp.
	maxNestingLevel int
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, maxNestingLevel int) *commentRepository {
	if maxNestingLevel <= 0 {
		maxNestingLevel = domain.DefaultMaxNestingLevel
	}
	return &commentRepository{
		DB:              db,
		maxNestingLevel: maxNestingLevel,
	}
}

func validBody(content string) bool {
	n := utf8.RuneCountInString(content)
	return n >= domain.CommentMinLen && n <= domain.CommentMaxLen
}

// Store persists a new comment. Replies lock their parent row so that a
// concurrent cascade delete of the parent either sweeps this reply too or
// makes this insert fail with ErrNotFound; no orphan can survive.
func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	if !validBody(comment.Content) {
		return domain.ErrBadParamInput
	}

	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.NewCommentFromDomain(comment)
		if comment.ParentID != 0 {
			var parent model.Comment
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&parent, "id = ?", comment.ParentID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrNotFound
				}
				return err
			}
			if comment.PostID != 0 && comment.PostID != parent.PostID {
				// a reply always belongs to its parent's post
				return domain.ErrBadParamInput
			}
			row.PostID = parent.PostID
			row.Level = parent.Level + 1
			if row.Level > c.maxNestingLevel {
				return domain.ErrNestingTooDeep
			}
		} else {
			row.Level = 0
		}

		if err := tx.Create(row).Error; err != nil {
			return err
		}
		*comment = row.ToDomain()
		return nil
	})
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) Update(ctx context.Context, id int64, content string, requesterID int64) (*domain.Comment, error) {
	if !validBody(content) {
		return nil, domain.ErrBadParamInput
	}

	var updated domain.Comment
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.Comment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if row.UserID != requesterID {
			return domain.ErrForbidden
		}

		now := time.Now()
		err = tx.Model(&model.Comment{}).
			Where("id = ?", id).
			Updates(map[string]any{"content": content, "updated_at": now}).Error
		if err != nil {
			return err
		}

		row.Content = content
		row.UpdatedAt = &now
		updated = row.ToDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the comment, its whole subtree and all like rows
// referencing any comment in it, in one transaction. The subtree is
// collected breadth-first; since this is a pure delete the order of the
// final bulk deletes is irrelevant.
func (c *commentRepository) Delete(ctx context.Context, id, requesterID, postOwnerID int64) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var root model.Comment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&root, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if requesterID != root.UserID && requesterID != postOwnerID {
			return domain.ErrForbidden
		}

		ids := []int64{root.ID}
		frontier := []int64{root.ID}
		for len(frontier) > 0 {
			var children []int64
			err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error
			if err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		err = tx.Where("subject_kind = ? AND subject_id IN ?", string(domain.SubjectComment), ids).
			Delete(&model.Like{}).Error
		if err != nil {
			return err
		}

		return tx.Where("id IN ?", ids).Delete(&model.Comment{}).Error
	})
}

func (c *commentRepository) FetchTopLevel(ctx context.Context, postID int64, page, pageSize int) ([]*domain.Comment, int64, error) {
	return c.fetchPage(ctx, page, pageSize, "post_id = ? AND parent_id = 0", postID)
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentID int64, page, pageSize int) ([]*domain.Comment, int64, error) {
	return c.fetchPage(ctx, page, pageSize, "parent_id = ?", parentID)
}

func (c *commentRepository) FetchByAuthor(ctx context.Context, userID int64, page, pageSize int) ([]*domain.Comment, int64, error) {
	return c.fetchPage(ctx, page, pageSize, "user_id = ?", userID)
}

// fetchPage is the shared listing shape: created_at ascending with id as
// the tiebreak, so repeated reads without intervening writes return
// identical pages.
func (c *commentRepository) fetchPage(ctx context.Context, page, pageSize int, query string, args ...any) ([]*domain.Comment, int64, error) {
	repository.PageVerify(&page, &pageSize)

	var total int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where(query, args...).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err = c.DB.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		domainComment := comments[i].ToDomain()
		res = append(res, &domainComment)
	}
	return res, total, nil
}

func (c *commentRepository) CountDescendants(ctx context.Context, id int64) (int64, error) {
	counts, err := c.CountDescendantsBatch(ctx, []int64{id})
	if err != nil {
		return 0, err
	}
	return counts[id], nil
}

// CountDescendantsBatch counts all transitive descendants for a page of
// comments in one breadth-first sweep, one query per tree level instead of
// one per comment. Each discovered child is attributed to the page root it
// hangs under.
func (c *commentRepository) CountDescendantsBatch(ctx context.Context, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	rootOf := make(map[int64]int64, len(ids))
	frontier := make([]int64, 0, len(ids))
	for _, id := range ids {
		counts[id] = 0
		rootOf[id] = id
		frontier = append(frontier, id)
	}

	for len(frontier) > 0 {
		var children []model.Comment
		err := c.DB.WithContext(ctx).Model(&model.Comment{}).
			Select("id, parent_id").
			Where("parent_id IN ?", frontier).
			Find(&children).Error
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for i := range children {
			root := rootOf[children[i].ParentID]
			counts[root]++
			rootOf[children[i].ID] = root
			frontier = append(frontier, children[i].ID)
		}
	}

	return counts, nil
}

func (c *commentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
