package auth

import "errors"

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
