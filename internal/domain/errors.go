package domain

import "errors"

var (
	ErrItemUnavailable           = errors.New("checkout: item not available or expired")
	ErrItemUnavailableAtCheckout = errors.New("checkout: item expired or out of stock during checkout")
	ErrEmptyCart                 = errors.New("checkout: cart is empty")
	ErrInsufficientFunds         = errors.New("checkout: insufficient balance")
	ErrInvalidQuantity           = errors.New("checkout: quantity must be greater than zero")
	ErrCurrencyMismatch          = errors.New("checkout: currency mismatch")
	ErrProductNotFound           = errors.New("catalog: product not found")
	ErrDuplicateProduct          = errors.New("catalog: product already exists")
)
