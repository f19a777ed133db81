package models

import (
	"time"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

const (
	CategoryGiftCard    = "Gift Card"
	CategoryPrepaidCard = "Prepaid Card"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
	OrderStatusRejected = "rejected"
)

const (
	TxnTypeDeposit         = "deposit"
	TxnTypePurchase        = "purchase"
	TxnTypeRefund          = "refund"
	TxnTypeAdminAdjustment = "admin_adjustment"
)

const (
	TxnStatusSuccess = "success"
	TxnStatusPending = "pending"
	TxnStatusFailed  = "failed"
)

type User struct {
	ID            string    `gorm:"primaryKey"               json:"id"`
	Username      string    `gorm:"uniqueIndex;not null"     json:"username"`
	Phone         string    `gorm:"not null"                 json:"phone"`
	PasswordHash  string    `gorm:"not null"                 json:"-"`
	Role          string    `gorm:"not null;default:user"    json:"role"`
	WalletBalance int64     `gorm:"not null;default:0"       json:"wallet_balance"`
	IsBanned      bool      `gorm:"not null;default:false"   json:"is_banned"`
	CreatedAt     time.Time `gorm:"not null"                 json:"created_at"`
}

type Product struct {
	ID          string    `gorm:"primaryKey"             json:"id"`
	Name        string    `gorm:"not null"               json:"name"`
	Description string    `gorm:"not null"               json:"description"`
	Price       int64     `gorm:"not null"               json:"price"`
	Category    string    `gorm:"not null"               json:"category"`
	ImageURL    string    `json:"image_url"`
	PDFURL      string    `json:"pdf_url,omitempty"`
	Stock       uint      `gorm:"not null;default:0"     json:"stock"`
	CreatedAt   time.Time `gorm:"not null"               json:"created_at"`
}

// Order snapshots the product name and price at purchase time, so later
// catalog edits or deletions never alter historical orders.
type Order struct {
	ID              string    `gorm:"primaryKey"         json:"id"`
	UserID          string    `gorm:"index;not null"     json:"user_id"`
	ProductID       string    `gorm:"not null"           json:"product_id"`
	ProductName     string    `gorm:"not null"           json:"product_name"`
	Price           int64     `gorm:"not null"           json:"price"`
	Status          string    `gorm:"not null"           json:"status"`
	PurchaseDate    time.Time `gorm:"not null"           json:"purchase_date"`
	UnlockedContent string    `json:"unlocked_content,omitempty"`
}

// Transaction rows are append-only; the amount sign decides debit vs credit.
type Transaction struct {
	ID          string    `gorm:"primaryKey"         json:"id"`
	UserID      string    `gorm:"index;not null"     json:"user_id"`
	Type        string    `gorm:"not null"           json:"type"`
	Amount      int64     `gorm:"not null"           json:"amount"`
	Description string    `gorm:"not null"           json:"description"`
	Date        time.Time `gorm:"not null"           json:"date"`
	Status      string    `gorm:"not null"           json:"status"`
}

// GlobalSettings is a singleton row, always stored under ID 1.
type GlobalSettings struct {
	ID          uint   `gorm:"primaryKey"   json:"-"`
	UPIID       string `json:"upi_id"`
	UPIQRURL    string `json:"upi_qr_url"`
	PaymentNote string `json:"payment_note"`
}

type Coupon struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string `gorm:"not null"                 json:"code"`
	DiscountAmount int64  `gorm:"not null"                 json:"discount_amount"`
	IsActive       bool   `gorm:"not null;default:true"    json:"is_active"`
}
