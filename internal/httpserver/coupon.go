package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/service"
	"github.com/acarder/cardshop/internal/transport"
)

type CouponHTTP struct {
	Svc     *service.CouponService
	Catalog *service.CatalogService
}

// Quote prices a product with a coupon applied. The coupon is not consumed;
// redemption is per checkout session only.
func (h *CouponHTTP) Quote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.quote")

	var req transport.CouponQuoteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("quote_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return httpError(err)
	}

	total, discount, err := h.Svc.Quote(ctx, req.Code, product.Price)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"price":    product.Price,
		"discount": discount,
		"total":    total,
	})
}

func (h *CouponHTTP) ListCoupons(c echo.Context) error {
	ctx := c.Request().Context()

	coupons, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_coupons_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list coupons")
	}
	return c.JSON(http.StatusOK, coupons)
}

func (h *CouponHTTP) CreateCoupon(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.create")

	var req transport.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("coupon_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	coupon, err := h.Svc.Create(ctx, req.Code, req.DiscountAmount)
	if err != nil {
		return httpError(err)
	}

	l.Info("coupon_create_success", "code", coupon.Code)
	return c.JSON(http.StatusCreated, coupon)
}
