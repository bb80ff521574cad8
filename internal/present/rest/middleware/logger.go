package middleware

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/storykeep/internal/domain"
)

// RequestID tags each request with a uuid, echoed in X-Request-Id and
// stored in the request context.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := context.WithValue(c.Request().Context(), domain.RequestIdCtxKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

// RequestLogger emits one slog record per request.
func RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("module", "http"),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			} else if v.Status >= 500 {
				level = slog.LevelError
			}
			if id, ok := RequesterID(c.Request().Context()); ok {
				attrs = append(attrs, slog.Int64("account_id", id))
			}
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
