package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailExists          = errors.New("email already exists")
	ErrInvalidSignupKey     = errors.New("invalid signup key")
	ErrForbidden            = errors.New("you are not allowed to do this")
	ErrCannotTerminateAdmin = errors.New("cannot terminate another admin")
	ErrUserNotFound         = errors.New("user not found")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
