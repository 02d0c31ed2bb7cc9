package domain

import "errors"

// Auth errors
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Order errors
var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidItem = errors.New("invalid cart item")
)
