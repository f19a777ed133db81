package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/service"
	"github.com/acarder/cardshop/internal/transport"
)

type WalletHTTP struct {
	Svc *service.WalletService
}

func (h *WalletHTTP) Deposit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.deposit")

	var req transport.DepositRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("deposit_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Deposit(ctx, userID(c), req.Amount, req.TxnID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WalletHTTP) MyTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	txns, err := h.Svc.Transactions(ctx, userID(c))
	if err != nil {
		logging.FromContext(ctx).Error("list_transactions_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list transactions")
	}
	return c.JSON(http.StatusOK, txns)
}

func (h *WalletHTTP) Adjust(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.adjust")

	var req transport.WalletAdjustRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("adjust_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.AdminAdjust(ctx, role(c), c.Param("id"), req.Amount); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
