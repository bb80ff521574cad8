package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/database/models"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func accountDomain(m models.Account) domain.Account {
	return domain.Account{
		ID:           m.ID,
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		DateOfBirth:  domain.FormatDate(m.DateOfBirth),
		City:         m.City,
		Gender:       m.Gender,
		IsActive:     m.IsActive,
		IsStaff:      m.IsStaff,
		CreatedAt:    m.CDate,
		PasswordHash: m.PasswordHash,
	}
}

// Create stores a new account. The e-mail is lower-cased; a taken address
// is reported as a ConflictError.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	dob, err := domain.ParseDate(account.DateOfBirth)
	if err != nil {
		return domain.Account{}, errors.Wrap(err, "AccountRepository.Create")
	}

	row := models.Account{
		Email:        strings.ToLower(account.Email),
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		DateOfBirth:  dob,
		City:         account.City,
		Gender:       account.Gender,
		PasswordHash: account.PasswordHash,
		IsActive:     true,
		IsStaff:      account.IsStaff,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Where("email = ?", row.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ConflictError{Resource: "account"}
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return domain.Account{}, translate(err, "account", "AccountRepository.Create")
	}
	return accountDomain(row), nil
}

func (r *AccountRepository) Get(ctx context.Context, id int64) (domain.Account, error) {
	var row models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Account{}, translate(err, "account", "AccountRepository.Get")
	}
	return accountDomain(row), nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	var row models.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		Take(&row).Error
	if err != nil {
		return domain.Account{}, translate(err, "account", "AccountRepository.GetByEmail")
	}
	return accountDomain(row), nil
}

// UpdateProfile applies the non-nil fields of in.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id int64, in domain.ProfileInput) (domain.Account, error) {
	var row models.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			Take(&row).Error
		if err != nil {
			return err
		}

		if in.Email != nil {
			email := strings.ToLower(*in.Email)
			if email != row.Email {
				var count int64
				err := tx.Model(&models.Account{}).
					Where("email = ? AND id <> ?", email, id).
					Count(&count).Error
				if err != nil {
					return err
				}
				if count > 0 {
					return domain.ConflictError{Resource: "account"}
				}
			}
			row.Email = email
		}
		if in.FirstName != nil {
			row.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			row.LastName = *in.LastName
		}
		if in.DateOfBirth != nil {
			dob, err := domain.ParseDate(*in.DateOfBirth)
			if err != nil {
				return err
			}
			row.DateOfBirth = dob
		}
		if in.City != nil {
			row.City = *in.City
		}
		if in.Gender != nil {
			row.Gender = in.Gender
		}

		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Account{}, translate(err, "account", "AccountRepository.UpdateProfile")
	}
	return accountDomain(row), nil
}
