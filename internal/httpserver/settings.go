package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
	"github.com/acarder/cardshop/internal/service"
	"github.com/acarder/cardshop/internal/transport"
)

type SettingsHTTP struct {
	Store repo.Store
	Admin *service.AdminService
}

// GetSettings is public: buyers need the payment instructions to load their
// wallet.
func (h *SettingsHTTP) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.Store.GetSettings(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("get_settings_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHTTP) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.update")

	var req transport.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_settings_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	settings := &models.GlobalSettings{
		UPIID:       req.UPIID,
		UPIQRURL:    req.UPIQRURL,
		PaymentNote: req.PaymentNote,
	}
	if err := h.Admin.UpdateSettings(ctx, role(c), settings); err != nil {
		return httpError(err)
	}

	l.Info("update_settings_success")
	return c.JSON(http.StatusOK, settings)
}
