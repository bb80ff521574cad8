package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/jwt"
)

var tracer = otel.Tracer("auth")

type AuthService struct {
	config domain.AuthConfig
}

func NewAuthService(config domain.AuthConfig) *AuthService {
	if config.AccessTTL <= 0 {
		config.AccessTTL = 15 * time.Minute
	}
	if config.RefreshTTL <= 0 {
		config.RefreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		config: config,
	}
}

type AuthResult struct {
	AccountID int64
}

// AuthJwt accepts access tokens only.
func (s *AuthService) AuthJwt(ctx context.Context, token string) (*AuthResult, error) {
	_, span := tracer.Start(ctx, "Auth.Service.AuthJwt")
	defer span.End()

	accountID, err := s.parse(token, domain.TokenKindAccess)
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, err
	}
	return &AuthResult{AccountID: accountID}, nil
}

// IssuePair mints a fresh access and refresh token for the account.
func (s *AuthService) IssuePair(ctx context.Context, accountID int64) (domain.TokenPair, error) {
	_, span := tracer.Start(ctx, "Auth.Service.IssuePair")
	defer span.End()

	access, err := s.issue(accountID, domain.TokenKindAccess, s.config.AccessTTL)
	if err != nil {
		span.RecordError(err)
		return domain.TokenPair{}, err
	}
	refresh, err := s.issue(accountID, domain.TokenKindRefresh, s.config.RefreshTTL)
	if err != nil {
		span.RecordError(err)
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (int64, domain.TokenPair, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Refresh")
	defer span.End()

	accountID, err := s.parse(refreshToken, domain.TokenKindRefresh)
	if err != nil {
		span.RecordError(err)
		return 0, domain.TokenPair{}, err
	}
	access, err := s.issue(accountID, domain.TokenKindAccess, s.config.AccessTTL)
	if err != nil {
		span.RecordError(err)
		return 0, domain.TokenPair{}, err
	}
	return accountID, domain.TokenPair{Access: access}, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "AuthService.HashPassword")
	}
	return string(hash), nil
}

func (s *AuthService) ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) issue(accountID int64, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	}
	token, err := jwt.Create(claims, s.config.Secret)
	if err != nil {
		return "", errors.Wrap(err, "AuthService.issue")
	}
	return token, nil
}

func (s *AuthService) parse(token, kind string) (int64, error) {
	claims, err := jwt.Validate(token, s.config.Secret)
	if err != nil {
		return 0, domain.AuthenticationError{Reason: err.Error()}
	}

	if claims.Kind != kind {
		return 0, domain.AuthenticationError{Reason: fmt.Sprintf("expected %s token", kind)}
	}
	if s.config.Issuer != "" && claims.Issuer != s.config.Issuer {
		return 0, domain.AuthenticationError{Reason: "issuer mismatch"}
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, domain.AuthenticationError{Reason: "invalid subject"}
	}
	return accountID, nil
}
