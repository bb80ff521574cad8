package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/storykeep/internal/domain"
)

// accountScoped implements CRUD over a table whose rows carry an account_id.
// Rows of other accounts behave exactly like missing rows.
type accountScoped[M any, T any, In any] struct {
	db       *gorm.DB
	resource string
	build    func(accountID int64, in In) (M, error)
	apply    func(row *M, in In) error
	toDomain func(M) T
}

func (r *accountScoped[M, T, In]) List(ctx context.Context, accountID int64) ([]T, error) {
	var rows []M
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, r.resource, r.resource+".List")
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toDomain(row))
	}
	return result, nil
}

func (r *accountScoped[M, T, In]) Get(ctx context.Context, accountID, id int64) (T, error) {
	var row M
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Take(&row).Error
	if err != nil {
		var zero T
		return zero, translate(err, r.resource, r.resource+".Get")
	}
	return r.toDomain(row), nil
}

func (r *accountScoped[M, T, In]) Create(ctx context.Context, accountID int64, in In) (T, error) {
	var zero T
	row, err := r.build(accountID, in)
	if err != nil {
		return zero, translate(err, r.resource, r.resource+".Create")
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return zero, translate(err, r.resource, r.resource+".Create")
	}
	return r.toDomain(row), nil
}

func (r *accountScoped[M, T, In]) Update(ctx context.Context, accountID, id int64, in In) (T, error) {
	var row M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND account_id = ?", id, accountID).
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

func (r *accountScoped[M, T, In]) Delete(ctx context.Context, accountID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(new(M))
	if result.Error != nil {
		return translate(result.Error, r.resource, r.resource+".Delete")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: r.resource}
	}
	return nil
}
