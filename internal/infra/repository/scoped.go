package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/database/models"
)

// storyScoped implements CRUD over rows that belong to a story.
// Every call first proves the story belongs to the caller.
type storyScoped[M any, T any, In any] struct {
	db       *gorm.DB
	resource string
	build    func(storyID int64, in In) (M, error)
	apply    func(row *M, in In) error
	toDomain func(M) T
}

func ensureStory(tx *gorm.DB, accountID, storyID int64) error {
	var count int64
	err := tx.Model(&models.Story{}).
		Where("id = ? AND account_id = ?", storyID, accountID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NotFoundError{Resource: "story"}
	}
	return nil
}

func (r *storyScoped[M, T, In]) List(ctx context.Context, accountID, storyID int64) ([]T, error) {
	var rows []M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStory(tx, accountID, storyID); err != nil {
			return err
		}
		return tx.Where("story_id = ?", storyID).Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, translate(err, r.resource, r.resource+".List")
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toDomain(row))
	}
	return result, nil
}

func (r *storyScoped[M, T, In]) Get(ctx context.Context, accountID, storyID, id int64) (T, error) {
	var row M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStory(tx, accountID, storyID); err != nil {
			return err
		}
		return tx.Where("id = ? AND story_id = ?", id, storyID).Take(&row).Error
	})
	if err != nil {
		var zero T
		return zero, translate(err, r.resource, r.resource+".Get")
	}
	return r.toDomain(row), nil
}

func (r *storyScoped[M, T, In]) Create(ctx context.Context, accountID, storyID int64, in In) (T, error) {
	var zero T
	row, err := r.build(storyID, in)
	if err != nil {
		return zero, translate(err, r.resource, r.resource+".Create")
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStory(tx, accountID, storyID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return zero, translate(err, r.resource, r.resource+".Create")
	}
	return r.toDomain(row), nil
}

func (r *storyScoped[M, T, In]) Update(ctx context.Context, accountID, storyID, id int64, in In) (T, error) {
	var row M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStory(tx, accountID, storyID); err != nil {
			return err
		}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND story_id = ?", id, storyID).
			Take(&row).Error
		if err != nil {
			return err
		}
		if err := r.apply(&row, in); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		var zero T
		return zero, translate(err, r.resource, r.resource+".Update")
	}
	return r.toDomain(row), nil
}

func (r *storyScoped[M, T, In]) Delete(ctx context.Context, accountID, storyID, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStory(tx, accountID, storyID); err != nil {
			return err
		}
		result := tx.Where("id = ? AND story_id = ?", id, storyID).Delete(new(M))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: r.resource}
		}
		return nil
	})
	return translate(err, r.resource, r.resource+".Delete")
}
