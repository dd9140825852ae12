package models

import "errors"

// Domain specific errors shared by services and handlers.
var (
	ErrNotFound    = errors.New("requested item not found")
	ErrBadRequest  = errors.New("bad request")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("backing store unavailable")
)
