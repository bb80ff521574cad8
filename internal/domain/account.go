package domain

import "time"

// Account is a registered user. Every owner entity hangs off one.
type Account struct {
	ID          int64     `json:"user_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth string    `json:"date_of_birth"`
	City        string    `json:"city"`
	Gender      *string   `json:"gender"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`

	PasswordHash string `json:"-"`
}

func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	DateOfBirth     string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	City            string `json:"city" validate:"required,city"`
	Password        string `json:"password" validate:"required,min=8,max=255"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (in RegisterInput) CheckFields() map[string]string {
	if in.Password != in.ConfirmPassword {
		return map[string]string{"password": "passwords do not match"}
	}
	return nil
}

// ProfileInput is a partial update; nil fields keep their stored value.
type ProfileInput struct {
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	City        *string `json:"city" validate:"omitempty,city"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
