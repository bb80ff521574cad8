package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/present/rest/presenter"
	"github.com/totegamma/storykeep/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// IdentifyIdentity stores the caller's account id in the request context when
// a valid bearer access token is present. Requests without one pass through
// anonymously; RequireAccount decides whether that is acceptable.
func (s *AuthMiddleware) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skipCheckAuthorization
			}

			result, err := s.auth.AuthJwt(ctx, token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyIdentity: s.auth.AuthJwt failed"))
				goto skipCheckAuthorization
			}

			ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, result.AccountID)
			span.SetAttributes(attribute.Int64("RequesterId", result.AccountID))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireAccount rejects anonymous requests with 401.
func RequireAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := RequesterID(c.Request().Context()); !ok {
			return presenter.Unauthorized(c, domain.AuthenticationError{}.Error())
		}
		return next(c)
	}
}

// RequesterID returns the authenticated account id, if any.
func RequesterID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(domain.RequesterIdCtxKey).(int64)
	return id, ok && id > 0
}
