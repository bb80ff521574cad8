package rest

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/totegamma/storykeep/internal/metrics"
	"github.com/totegamma/storykeep/internal/present/rest/middleware"
	"github.com/totegamma/storykeep/internal/validate"
)

// NewEcho returns an echo instance with the shared middleware stack and the
// handler's routes. Extra middleware (tracing) runs first.
func NewEcho(h *Handler, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.Echo{}

	e.Use(extra...)
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(metrics.Middleware())

	h.RegisterRoutes(e)
	return e
}
