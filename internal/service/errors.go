package service

import "errors"

// 购物车与商品
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidCartItem  = errors.New("invalid cart item")
	ErrInvalidUser      = errors.New("invalid user")
	ErrCartBusy         = errors.New("cart is busy")
)

// 下单与订单
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrConflict           = errors.New("cart modified concurrently")
	ErrPersistenceFailure = errors.New("order persistence failure")
	ErrOrderNotFound      = errors.New("order not found")
)

// 用户认证
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidToken       = errors.New("invalid token")
)
