package domain

import "errors"

var (
	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")
	ErrJobNotFound        = errors.New("job not found")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
