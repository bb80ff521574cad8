package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/storykeep/internal/domain"
)

// ownerScope proves that the owner addressed by ref belongs to the account
// and returns the id stored in the junction's owner column.
type ownerScope func(tx *gorm.DB, accountID int64, ref domain.OwnerRef) (int64, error)

// associationRepository couples owner rows with rows of a shared table
// through a junction table keyed by (owner, shared).
//
// S is the shared model, J the junction model, T the domain value and
// In the request payload that identifies the shared row.
type associationRepository[S any, J any, T any, In any] struct {
	db       *gorm.DB
	resource string

	sharedTable   string
	junctionTable string
	ownerCol      string
	sharedCol     string

	scope     ownerScope
	resolve   func(tx *gorm.DB, accountID int64, in In) (S, error)
	sharedID  func(S) int64
	junction  func(ownerID, sharedID int64) J
	createdAt func(J) time.Time
	toDomain  func(S) T
}

// Link resolves the shared row for in and attaches it to the owner.
// Both inserts tolerate concurrent duplicates: the unique constraint decides
// the winner and the stored row is read back.
func (r *associationRepository[S, J, T, In]) Link(ctx context.Context, accountID int64, owner domain.OwnerRef, in In) (domain.LinkResult[T], error) {
	var result domain.LinkResult[T]

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownerID, err := r.scope(tx, accountID, owner)
		if err != nil {
			return err
		}

		shared, err := r.resolve(tx, accountID, in)
		if err != nil {
			return err
		}
		sharedID := r.sharedID(shared)

		row := r.junction(ownerID, sharedID)
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: r.ownerCol}, {Name: r.sharedCol}},
			DoNothing: true,
		}).Omit(clause.Associations).Create(&row)
		if insert.Error != nil {
			return insert.Error
		}

		created := insert.RowsAffected > 0
		if !created {
			var existing J
			err := tx.Where(map[string]any{r.ownerCol: ownerID, r.sharedCol: sharedID}).
				Take(&existing).Error
			if err != nil {
				return err
			}
			row = existing
		}

		result = domain.LinkResult[T]{
			Shared: r.toDomain(shared),
			Association: domain.Association{
				OwnerID:   ownerID,
				SharedID:  sharedID,
				CreatedAt: r.createdAt(row),
			},
			Created: created,
		}
		return nil
	})
	if err != nil {
		return domain.LinkResult[T]{}, translate(err, r.resource, r.resource+".Link")
	}
	return result, nil
}

// List returns the shared rows attached to the owner, oldest first.
func (r *associationRepository[S, J, T, In]) List(ctx context.Context, accountID int64, owner domain.OwnerRef) ([]T, error) {
	var rows []S
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownerID, err := r.scope(tx, accountID, owner)
		if err != nil {
			return err
		}
		return tx.Table(r.sharedTable).
			Select(r.sharedTable+".*").
			Joins("JOIN "+r.junctionTable+" ON "+r.junctionTable+"."+r.sharedCol+" = "+r.sharedTable+".id").
			Where(r.junctionTable+"."+r.ownerCol+" = ?", ownerID).
			Order(r.sharedTable + ".id").
			Find(&rows).Error
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

// Unlink removes the junction row only. The shared row is kept even when
// nothing references it anymore.
func (r *associationRepository[S, J, T, In]) Unlink(ctx context.Context, accountID int64, owner domain.OwnerRef, sharedID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownerID, err := r.scope(tx, accountID, owner)
		if err != nil {
			return err
		}
		deleted := tx.Where(map[string]any{r.ownerCol: ownerID, r.sharedCol: sharedID}).Delete(new(J))
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected == 0 {
			return domain.NotFoundError{Resource: r.resource}
		}
		return nil
	})
	return translate(err, r.resource, r.resource+".Unlink")
}

// findOrCreateShared inserts the row built for key unless a row with the
// same natural key digest exists, then returns the stored row. A stored row
// whose fields differ from key is a digest collision and is never merged.
func findOrCreateShared[M any, K comparable](tx *gorm.DB, key K, build func(digest string) M, keyOf func(M) K) (M, error) {
	var stored M

	digest, err := domain.NaturalKeyDigest(key)
	if err != nil {
		return stored, errors.Wrap(err, "findOrCreateShared")
	}

	row := build(digest)
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "natural_key"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return stored, err
	}

	if err := tx.Where("natural_key = ?", digest).Take(&stored).Error; err != nil {
		return stored, err
	}
	if keyOf(stored) != key {
		return stored, errors.Errorf("natural key collision on %s", digest)
	}
	return stored, nil
}
