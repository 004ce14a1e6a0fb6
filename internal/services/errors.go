package services

import "errors"

// Errors caused by the caller's input. Handlers answer them with 400.
var (
	ErrInvalidProject       = errors.New("invalid project name")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrUnsupportedCurrency  = errors.New("unsupported currency")
	ErrDuplicateCountry     = errors.New("duplicate country in order")
	ErrInactiveCountry      = errors.New("inactive country in order")
	ErrInvalidImage         = errors.New("invalid image")
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrEmailTaken           = errors.New("email already registered")
	ErrImageHostUnavailable = errors.New("image host is not configured")
)

var badRequestErrors = []error{
	ErrInvalidProject,
	ErrInvalidPaymentMethod,
	ErrUnsupportedCurrency,
	ErrDuplicateCountry,
	ErrInactiveCountry,
	ErrInvalidImage,
}

// IsBadRequest reports whether err was caused by invalid input.
func IsBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
