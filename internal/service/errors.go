package service

import "errors"

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrForbidden          = errors.New("forbidden")           // 403
	ErrNotFound           = errors.New("not found")           // 404
	ErrUserAlreadyExist   = errors.New("user already exist")  // 409
	ErrBanned             = errors.New("account banned")      // 403
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrInvalidCoupon      = errors.New("invalid coupon code")
	ErrOrderClosed        = errors.New("order already resolved")
)
