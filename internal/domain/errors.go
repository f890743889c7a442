package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrValidation      = errors.New("validation error")
	ErrServerRejected  = errors.New("server rejected request")
	ErrPaymentRejected = errors.New("payment rejected")
	ErrNetwork         = errors.New("network error")
)

var (
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrPaymentInFlight  = errors.New("payment already in progress for this booking")
	ErrCancelNotAllowed = errors.New("booking cannot be cancelled")
	ErrUnknownMethod    = errors.New("unknown payment method")
)

var (
	ErrEmailInUse      = errors.New("email is already in use")
	ErrWeakPassword    = errors.New("password is too weak")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrTooManyRequests = errors.New("too many attempts, try again later")
	ErrPopupClosed     = errors.New("federated sign-in was cancelled")
	ErrNoCurrentUser   = errors.New("no authenticated user")
)
