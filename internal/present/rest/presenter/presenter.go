package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/storykeep/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func BadRequest(c echo.Context, err error) error {
	slog.DebugContext(c.Request().Context(), "bad request", slog.String("error", err.Error()))
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	slog.DebugContext(c.Request().Context(), "bad request", slog.String("error", msg))
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func ValidationFailed(c echo.Context, fields map[string]string) error {
	if fields == nil {
		fields = map[string]string{}
	}
	return c.JSON(http.StatusBadRequest, validationResponse{Error: "validation failed", Fields: fields})
}

func Unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: msg})
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

func Conflict(c echo.Context, msg string) error {
	return c.JSON(http.StatusConflict, errorResponse{Error: msg})
}

func InternalError(c echo.Context, err error) error {
	slog.ErrorContext(
		c.Request().Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("path", c.Path()),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// Error maps a usecase error onto its response.
func Error(c echo.Context, err error) error {
	var verr domain.ValidationError
	var nerr domain.NotFoundError
	var aerr domain.AuthenticationError
	var cerr domain.ConflictError

	switch {
	case errors.As(err, &verr):
		return ValidationFailed(c, verr.Fields)
	case errors.As(err, &nerr):
		return NotFound(c, nerr.Error())
	case errors.As(err, &aerr):
		return Unauthorized(c, aerr.Error())
	case errors.As(err, &cerr):
		return Conflict(c, cerr.Error())
	default:
		return InternalError(c, err)
	}
}
