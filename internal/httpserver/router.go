package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Orders   *OrderHTTP
	Wallet   *WalletHTTP
	Users    *UserHTTP
	Settings *SettingsHTTP
	Coupons  *CouponHTTP

	JWTSecret     []byte
	SearchEnabled bool
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := &AuthMiddleware{JWTSecret: d.JWTSecret}

	e.POST("/auth/signup", d.Auth.Signup)
	e.POST("/auth/login", d.Auth.Login)

	products := e.Group("/catalog/products")
	products.GET("", d.Catalog.GetProducts)
	if d.SearchEnabled {
		products.GET("/search", d.Catalog.SearchProducts)
	}
	products.GET("/:id", d.Catalog.GetProduct)

	e.GET("/settings", d.Settings.GetSettings)

	me := e.Group("/me", mw.RequireLogin)
	me.GET("", d.Users.Me)
	me.GET("/orders", d.Orders.MyOrders)
	me.GET("/transactions", d.Wallet.MyTransactions)

	user := e.Group("", mw.RequireLogin)
	user.POST("/wallet/deposit", d.Wallet.Deposit)
	user.POST("/orders", d.Orders.Checkout)
	user.POST("/coupons/quote", d.Coupons.Quote)

	admin := e.Group("/admin", mw.RequireAdmin)
	admin.GET("/orders", d.Orders.ListOrders)
	admin.POST("/orders/:id/approve", d.Orders.Approve)
	admin.POST("/orders/:id/reject", d.Orders.Reject)
	admin.POST("/products", d.Catalog.CreateProduct)
	admin.PATCH("/products/:id", d.Catalog.PatchProduct)
	admin.POST("/products/:id/image", d.Catalog.UploadProductImage)
	admin.DELETE("/products/:id", d.Catalog.DeleteProduct)
	admin.GET("/coupons", d.Coupons.ListCoupons)
	admin.POST("/coupons", d.Coupons.CreateCoupon)
	admin.PUT("/settings", d.Settings.UpdateSettings)
	admin.GET("/users", d.Users.ListUsers)
	admin.GET("/users/:id/drift", d.Users.LedgerDrift)
	admin.POST("/users/:id/wallet", d.Wallet.Adjust)

	// Role and ban changes stay super_admin only; the policy inside the
	// service enforces it again for callers that bypass HTTP.
	super := e.Group("/admin/users", mw.RequireSuperAdmin)
	super.POST("/:id/role", d.Users.SetRole)
	super.POST("/:id/ban", d.Users.SetBanned)
}
