package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/repo"
	"github.com/acarder/cardshop/internal/service"
	"github.com/acarder/cardshop/internal/transport"
)

type UserHTTP struct {
	Store repo.Store
	Admin *service.AdminService
}

func (h *UserHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.Store.GetUser(ctx, userID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Admin.ListUsers(ctx, role(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) SetRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.set_role")

	var req transport.SetRoleRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_role_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Admin.SetRole(ctx, role(c), c.Param("id"), req.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) SetBanned(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.set_banned")

	var req transport.SetBannedRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_banned_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Admin.SetBanned(ctx, role(c), c.Param("id"), req.Banned)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) LedgerDrift(c echo.Context) error {
	ctx := c.Request().Context()

	drift, err := h.Admin.LedgerDrift(ctx, role(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user_id": c.Param("id"), "drift": drift})
}
