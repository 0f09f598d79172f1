package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidToken = errors.New("invalid or missing token")
	ErrForbidden    = errors.New("insufficient role")
)
