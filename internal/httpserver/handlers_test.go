package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/payment"
	"github.com/acarder/cardshop/internal/repo"
	"github.com/acarder/cardshop/internal/service"
)

type testEnv struct {
	T     *testing.T
	E     *echo.Echo
	Store *repo.GormRepo
}

const (
	testAdminUsername = "root_admin"
	testAdminPhone    = "1234567890"
	testAdminPassword = "root-secret"
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	store := repo.NewGormRepo(db)
	require.NoError(t, store.Init(context.Background(), repo.SeedAdmin{
		Username: testAdminUsername,
		Phone:    testAdminPhone,
		Password: testAdminPassword,
	}))

	secret := []byte("test-jwt-secret")

	couponSvc := &service.CouponService{Store: store}
	authSvc := &service.AuthService{Store: store, JWTSecret: secret}
	catalogSvc := &service.CatalogService{Store: store}
	walletSvc := &service.WalletService{Store: store, Verifier: payment.NewStubVerifier()}
	orderSvc := &service.OrderService{Store: store, Coupons: couponSvc}
	adminSvc := &service.AdminService{Store: store}

	e := echo.New()
	Register(e, &Deps{
		Auth:      &AuthHTTP{Svc: authSvc},
		Catalog:   &CatalogHTTP{Svc: catalogSvc},
		Orders:    &OrderHTTP{Svc: orderSvc},
		Wallet:    &WalletHTTP{Svc: walletSvc},
		Users:     &UserHTTP{Store: store, Admin: adminSvc},
		Settings:  &SettingsHTTP{Store: store, Admin: adminSvc},
		Coupons:   &CouponHTTP{Svc: couponSvc, Catalog: catalogSvc},
		JWTSecret: secret,
	})

	return &testEnv{T: t, E: e, Store: store}
}

func (env *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) signupAndLogin(username, phone, password string) (string, models.User) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"username": username, "phone": phone, "password": password,
	})
	require.Equal(env.T, http.StatusCreated, rec.Code, rec.Body.String())

	return env.login(username, phone, password)
}

func (env *testEnv) login(username, phone, password string) (string, models.User) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": username, "phone": phone, "password": password,
	})
	require.Equal(env.T, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		AccessToken string      `json:"access_token"`
		User        models.User `json:"user"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(env.T, res.AccessToken)
	return res.AccessToken, res.User
}

func (env *testEnv) adminToken() string {
	token, _ := env.login(testAdminUsername, testAdminPhone, testAdminPassword)
	return token
}

func TestSignupAndMe(t *testing.T) {
	env := newTestEnv(t)

	token, user := env.signupAndLogin("alice", "111", "password")
	assert.Equal(t, models.RoleUser, user.Role)

	rec := env.do(http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "alice", me.Username)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	env.signupAndLogin("alice", "111", "password")

	rec := env.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"username": "alice", "phone": "222", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Failures(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin("alice", "111", "password")

	rec := env.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice", "phone": "111", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice", "phone": "000", "password": "password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalogIsPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/catalog/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2, "seeded catalog")

	rec = env.do(http.MethodGet, "/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)

	token, _ := env.signupAndLogin("buyer", "111", "password")

	rec := env.do(http.MethodPost, "/wallet/deposit", token, map[string]any{
		"amount": 600, "txn_id": "UPI-1",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/orders", token, map[string]string{
		"product_id": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Amazon ₹500 Gift Card", order.ProductName)

	rec = env.do(http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, int64(100), me.WalletBalance)

	// Admin approves with a card code; the buyer sees the unlocked content.
	adminToken := env.adminToken()
	rec = env.do(http.MethodPost, "/admin/orders/"+order.ID+"/approve", adminToken, map[string]string{
		"unlocked_content": "CODE-99",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(http.MethodGet, "/me/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusApproved, orders[0].Status)
	assert.Equal(t, "CODE-99", orders[0].UnlockedContent)
}

func TestCheckout_InsufficientBalance(t *testing.T) {
	env := newTestEnv(t)

	token, _ := env.signupAndLogin("broke", "111", "password")

	rec := env.do(http.MethodPost, "/orders", token, map[string]string{
		"product_id": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCouponQuote(t *testing.T) {
	env := newTestEnv(t)

	adminToken := env.adminToken()
	rec := env.do(http.MethodPost, "/admin/coupons", adminToken, map[string]any{
		"code": "SAVE50", "discount_amount": 50,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, _ := env.signupAndLogin("buyer", "111", "password")

	rec = env.do(http.MethodPost, "/coupons/quote", token, map[string]string{
		"code": "SAVE50", "product_id": "p1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var quote struct {
		Price    int64 `json:"price"`
		Discount int64 `json:"discount"`
		Total    int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, int64(500), quote.Price)
	assert.Equal(t, int64(50), quote.Discount)
	assert.Equal(t, int64(450), quote.Total)

	rec = env.do(http.MethodPost, "/coupons/quote", token, map[string]string{
		"code": "XYZ", "product_id": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown code fails, price unchanged")
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	token, _ := env.signupAndLogin("pleb", "111", "password")

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/orders"},
		{http.MethodGet, "/admin/users"},
		{http.MethodPost, "/admin/products"},
		{http.MethodPost, "/admin/coupons"},
	}
	for _, p := range paths {
		rec := env.do(p.method, p.path, token, map[string]string{})
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", p.method, p.path)
	}

	rec := env.do(http.MethodGet, "/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing token")
}

func TestRoleAndBanRequireSuperAdmin(t *testing.T) {
	env := newTestEnv(t)

	superToken := env.adminToken()
	_, target := env.signupAndLogin("victim", "111", "password")

	// Promote the target to admin, then verify the new admin still cannot
	// touch roles or bans.
	rec := env.do(http.MethodPost, fmt.Sprintf("/admin/users/%s/role", target.ID), superToken, map[string]string{
		"role": models.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	adminToken, _ := env.login("victim", "111", "password")

	other, err := env.Store.FindUserByUsername(context.Background(), testAdminUsername)
	require.NoError(t, err)

	rec = env.do(http.MethodPost, fmt.Sprintf("/admin/users/%s/role", other.ID), adminToken, map[string]string{
		"role": models.RoleUser,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPost, fmt.Sprintf("/admin/users/%s/ban", other.ID), adminToken, map[string]any{
		"banned": true,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// But the super_admin can ban the (demotable) admin.
	rec = env.do(http.MethodPost, fmt.Sprintf("/admin/users/%s/ban", target.ID), superToken, map[string]any{
		"banned": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "victim", "phone": "111", "password": "password",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code, "banned account cannot log in")
}

func TestProductAdminCRUD(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken()

	rec := env.do(http.MethodPost, "/admin/products", adminToken, map[string]any{
		"name": "Steam ₹200", "description": "wallet code", "price": 200,
		"category": models.CategoryGiftCard, "stock": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	rec = env.do(http.MethodPatch, "/admin/products/"+product.ID, adminToken, map[string]any{
		"price": 180,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/admin/products/"+product.ID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodGet, "/catalog/products/"+product.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWalletAdjustEndpoint(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken()

	_, target := env.signupAndLogin("alice", "111", "password")

	rec := env.do(http.MethodPost, fmt.Sprintf("/admin/users/%s/wallet", target.ID), adminToken, map[string]any{
		"amount": 250,
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	got, err := env.Store.GetUser(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.WalletBalance)

	rec = env.do(http.MethodGet, fmt.Sprintf("/admin/users/%s/drift", target.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var drift struct {
		Drift int64 `json:"drift"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drift))
	assert.Equal(t, int64(0), drift.Drift)
}
