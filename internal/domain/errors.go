package domain

import "errors"

var (
	ErrNoSuchUser          = errors.New("no such user")
	ErrNoSuchProduct       = errors.New("no such product")
	ErrNoSuchPurchase      = errors.New("no such purchase")
	ErrNotEnoughStock      = errors.New("not enough stock")
	ErrPurchaseAlreadyPaid = errors.New("purchase has already been paid")
	ErrBulkCountMismatch   = errors.New("outstanding purchase count does not match")
	ErrDuplicateUser       = errors.New("phone number already registered")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("not allowed to access this")
	ErrInvalidInput        = errors.New("invalid input")
)
