package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
)

// translate maps gorm sentinel errors onto domain errors and wraps the rest.
func translate(err error, resource, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundError{Resource: resource}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ConflictError{Resource: resource}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		return err
	}
	return errors.Wrap(err, op)
}
