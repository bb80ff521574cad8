package usecase

import (
	"context"

	"github.com/totegamma/storykeep/internal/domain"
)

// AccountRepository defines storage operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	UpdateProfile(ctx context.Context, id int64, in domain.ProfileInput) (domain.Account, error)
}

// OwnedRepository stores rows that belong directly to an account.
type OwnedRepository[T any, In any] interface {
	List(ctx context.Context, accountID int64) ([]T, error)
	Get(ctx context.Context, accountID, id int64) (T, error)
	Create(ctx context.Context, accountID int64, in In) (T, error)
	Update(ctx context.Context, accountID, id int64, in In) (T, error)
	Delete(ctx context.Context, accountID, id int64) error
}

// StoryScopedRepository stores rows that belong to one of the account's stories.
type StoryScopedRepository[T any, In any] interface {
	List(ctx context.Context, accountID, storyID int64) ([]T, error)
	Get(ctx context.Context, accountID, storyID, id int64) (T, error)
	Create(ctx context.Context, accountID, storyID int64, in In) (T, error)
	Update(ctx context.Context, accountID, storyID, id int64, in In) (T, error)
	Delete(ctx context.Context, accountID, storyID, id int64) error
}

// AssociationRepository links shared rows to an owner.
type AssociationRepository[T any, In any] interface {
	Link(ctx context.Context, accountID int64, owner domain.OwnerRef, in In) (domain.LinkResult[T], error)
	List(ctx context.Context, accountID int64, owner domain.OwnerRef) ([]T, error)
	Unlink(ctx context.Context, accountID int64, owner domain.OwnerRef, sharedID int64) error
}

// Authenticator issues tokens and checks passwords.
type Authenticator interface {
	IssuePair(ctx context.Context, accountID int64) (domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (int64, domain.TokenPair, error)
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) bool
}

// Publisher delivers association events to listeners.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
