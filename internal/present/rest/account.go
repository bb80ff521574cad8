package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/present/rest/presenter"
)

func (h *Handler) handleRegister(c echo.Context) error {
	var in domain.RegisterInput
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	account, err := h.uc.Account.Register(c.Request().Context(), in)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, account)
}

func (h *Handler) handleToken(c echo.Context) error {
	var in domain.LoginInput
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	pair, err := h.uc.Account.Login(c.Request().Context(), in)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, pair)
}

func (h *Handler) handleTokenRefresh(c echo.Context) error {
	var in domain.RefreshInput
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	pair, err := h.uc.Account.Refresh(c.Request().Context(), in)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, pair)
}

func (h *Handler) handleProfile(c echo.Context) error {
	account, err := h.uc.Account.Profile(c.Request().Context(), requester(c))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, account)
}

func (h *Handler) handleUpdateProfile(c echo.Context) error {
	var in domain.ProfileInput
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	account, err := h.uc.Account.UpdateProfile(c.Request().Context(), requester(c), in)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, account)
}
