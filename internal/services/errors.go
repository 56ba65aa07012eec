package services

import "errors"

// ErrForbidden marks an attempt to access a resource owned by another user.
var ErrForbidden = errors.New("forbidden")
