package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrProductNotFound = errors.New("product not found")

	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginTaken         = errors.New("login already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserExists         = errors.New("user already exists")
	ErrValidation         = errors.New("invalid input")
)
