package repository

import "errors"

// ErrNotFound is returned when a row does not exist. Callers map it to
// a 404; anything else is a store failure.
var ErrNotFound = errors.New("record not found")
