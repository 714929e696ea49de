package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalid         = errors.New("invalid")
	ErrStoreWrite      = errors.New("store write error")
	ErrStoreRemove     = errors.New("store remove error")
	ErrStoreIterate    = errors.New("store iterate error")
	ErrSinkUnavailable = errors.New("sink unavailable")
)
