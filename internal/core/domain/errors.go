package domain

import "errors"

var (
	// Gate rejections. MissingCredential maps to 401, the rest of the
	// credential failures to 403.
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid or expired credential")
	ErrInsufficientRole  = errors.New("insufficient privilege")
	ErrOwnershipMismatch = errors.New("ownership mismatch")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidID         = errors.New("malformed identifier")

	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrOrderNotFound = errors.New("order not found")
	ErrPartNotFound  = errors.New("part not found")

	ErrPaymentGateway = errors.New("payment gateway failure")
)
