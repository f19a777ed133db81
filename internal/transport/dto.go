package transport

type SignupRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	PDFURL      string `json:"pdf_url"`
	Stock       uint   `json:"stock"`
}

type PatchProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	PDFURL      *string `json:"pdf_url"`
	Stock       *uint   `json:"stock"`
}

type CheckoutRequest struct {
	ProductID  string `json:"product_id"`
	CouponCode string `json:"coupon_code"`
}

type DepositRequest struct {
	Amount int64  `json:"amount"`
	TxnID  string `json:"txn_id"`
}

type CouponQuoteRequest struct {
	Code      string `json:"code"`
	ProductID string `json:"product_id"`
}

type CreateCouponRequest struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discount_amount"`
}

type ApproveOrderRequest struct {
	UnlockedContent string `json:"unlocked_content"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type SetBannedRequest struct {
	Banned bool `json:"banned"`
}

type WalletAdjustRequest struct {
	Amount int64 `json:"amount"`
}

type UpdateSettingsRequest struct {
	UPIID       string `json:"upi_id"`
	UPIQRURL    string `json:"upi_qr_url"`
	PaymentNote string `json:"payment_note"`
}
