package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/totegamma/storykeep/internal/domain"
)

type mockAccountRepo struct {
	byEmail map[string]domain.Account
	nextID  int64
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: map[string]domain.Account{}}
}

func (m *mockAccountRepo) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	if _, ok := m.byEmail[account.Email]; ok {
		return domain.Account{}, domain.ConflictError{Resource: "account"}
	}
	m.nextID++
	account.ID = m.nextID
	account.IsActive = true
	m.byEmail[account.Email] = account
	return account, nil
}

func (m *mockAccountRepo) Get(ctx context.Context, id int64) (domain.Account, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Account{}, domain.NotFoundError{Resource: "account"}
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return domain.Account{}, domain.NotFoundError{Resource: "account"}
	}
	return a, nil
}

func (m *mockAccountRepo) UpdateProfile(ctx context.Context, id int64, in domain.ProfileInput) (domain.Account, error) {
	a, err := m.Get(ctx, id)
	if err != nil {
		return a, err
	}
	if in.FirstName != nil {
		a.FirstName = *in.FirstName
	}
	m.byEmail[a.Email] = a
	return a, nil
}

type mockAuth struct{}

func (mockAuth) IssuePair(ctx context.Context, accountID int64) (domain.TokenPair, error) {
	return domain.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (mockAuth) Refresh(ctx context.Context, refreshToken string) (int64, domain.TokenPair, error) {
	if refreshToken != "refresh" {
		return 0, domain.TokenPair{}, domain.AuthenticationError{Reason: "bad token"}
	}
	return 1, domain.TokenPair{Access: "access2"}, nil
}

func (mockAuth) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockAuth) ComparePassword(hash, password string) bool {
	return hash == "hashed:"+password
}

func validRegistration() domain.RegisterInput {
	return domain.RegisterInput{
		Email:           "neda@example.com",
		FirstName:       "Neda",
		LastName:        "K",
		DateOfBirth:     "1992-03-04",
		City:            "london",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	}
}

func TestAccountRegister(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo, mockAuth{})

	account, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.PasswordHash != "hashed:longenough" {
		t.Fatalf("password was not hashed: %q", account.PasswordHash)
	}

	if _, err := uc.Register(context.Background(), validRegistration()); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAccountRegisterPasswordMismatch(t *testing.T) {
	uc := NewAccountUsecase(newMockAccountRepo(), mockAuth{})

	in := validRegistration()
	in.ConfirmPassword = "different1"
	_, err := uc.Register(context.Background(), in)

	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["password"] == "" {
		t.Fatalf("expected password field error, got %v", verr.Fields)
	}
}

func TestAccountLogin(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo, mockAuth{})
	if _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	pair, err := uc.Login(context.Background(), domain.LoginInput{Email: "neda@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected token pair, got %+v", pair)
	}

	_, err = uc.Login(context.Background(), domain.LoginInput{Email: "neda@example.com", Password: "wrongpass"})
	if !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}

	_, err = uc.Login(context.Background(), domain.LoginInput{Email: "nobody@example.com", Password: "longenough"})
	if !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected authentication error for unknown email, got %v", err)
	}
}

func TestAccountLoginInactive(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo, mockAuth{})
	account, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	account.IsActive = false
	repo.byEmail[account.Email] = account

	_, err = uc.Login(context.Background(), domain.LoginInput{Email: "neda@example.com", Password: "longenough"})
	if !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestAccountRefresh(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo, mockAuth{})
	if _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	pair, err := uc.Refresh(context.Background(), domain.RefreshInput{Refresh: "refresh"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if pair.Access != "access2" {
		t.Fatalf("unexpected pair %+v", pair)
	}

	if _, err := uc.Refresh(context.Background(), domain.RefreshInput{Refresh: "other"}); !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestAccountUpdateProfileValidates(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo, mockAuth{})
	account, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	city := "atlantis"
	if _, err := uc.UpdateProfile(context.Background(), account.ID, domain.ProfileInput{City: &city}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	name := "Nedaa"
	updated, err := uc.UpdateProfile(context.Background(), account.ID, domain.ProfileInput{FirstName: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Nedaa" {
		t.Fatalf("expected first name to change, got %q", updated.FirstName)
	}
}
