package services

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrEmailTaken = errors.New("email already registered")
)
