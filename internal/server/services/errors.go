package services

import "errors"

// ErrInvalidArgument is returned for requests missing required fields.
var ErrInvalidArgument = errors.New("invalid argument")
