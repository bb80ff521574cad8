package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/validate"
)

var tracer = otel.Tracer("usecase")

type AccountUsecase struct {
	repo AccountRepository
	auth Authenticator
}

func NewAccountUsecase(repo AccountRepository, auth Authenticator) *AccountUsecase {
	return &AccountUsecase{repo: repo, auth: auth}
}

func (uc *AccountUsecase) Register(ctx context.Context, in domain.RegisterInput) (domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Usecase.Register")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return domain.Account{}, err
	}

	hash, err := uc.auth.HashPassword(in.Password)
	if err != nil {
		span.RecordError(err)
		return domain.Account{}, err
	}

	account, err := uc.repo.Create(ctx, domain.Account{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		DateOfBirth:  in.DateOfBirth,
		City:         in.City,
		PasswordHash: hash,
	})
	if err != nil {
		span.RecordError(err)
		return domain.Account{}, err
	}

	span.SetAttributes(attribute.Int64("AccountID", account.ID))
	return account, nil
}

// Login trades valid credentials for a token pair. Unknown e-mails, wrong
// passwords and inactive accounts all fail the same way.
func (uc *AccountUsecase) Login(ctx context.Context, in domain.LoginInput) (domain.TokenPair, error) {
	ctx, span := tracer.Start(ctx, "Account.Usecase.Login")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return domain.TokenPair{}, err
	}

	account, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TokenPair{}, domain.AuthenticationError{Reason: "invalid credentials"}
		}
		span.RecordError(err)
		return domain.TokenPair{}, err
	}

	if !uc.auth.ComparePassword(account.PasswordHash, in.Password) || !account.IsActive {
		return domain.TokenPair{}, domain.AuthenticationError{Reason: "invalid credentials"}
	}

	return uc.auth.IssuePair(ctx, account.ID)
}

func (uc *AccountUsecase) Refresh(ctx context.Context, in domain.RefreshInput) (domain.TokenPair, error) {
	ctx, span := tracer.Start(ctx, "Account.Usecase.Refresh")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return domain.TokenPair{}, err
	}

	accountID, pair, err := uc.auth.Refresh(ctx, in.Refresh)
	if err != nil {
		return domain.TokenPair{}, err
	}

	// the account may have been deactivated since the refresh token was issued
	account, err := uc.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TokenPair{}, domain.AuthenticationError{Reason: "account not found"}
		}
		return domain.TokenPair{}, err
	}
	if !account.IsActive {
		return domain.TokenPair{}, domain.AuthenticationError{Reason: "account disabled"}
	}
	return pair, nil
}

func (uc *AccountUsecase) Profile(ctx context.Context, accountID int64) (domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Usecase.Profile")
	defer span.End()

	return uc.repo.Get(ctx, accountID)
}

func (uc *AccountUsecase) UpdateProfile(ctx context.Context, accountID int64, in domain.ProfileInput) (domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Usecase.UpdateProfile")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return domain.Account{}, err
	}
	return uc.repo.UpdateProfile(ctx, accountID, in)
}
