package errors

import "fmt"

// WrapStoreWrite wraps an error with store write context
func WrapStoreWrite(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreWrite, context, err)
}

// WrapStoreRemove wraps an error with store remove context
func WrapStoreRemove(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreRemove, context, err)
}

// WrapStoreIterate wraps an error with store iterate context
func WrapStoreIterate(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreIterate, context, err)
}

// WrapInvalid wraps an error with invalid input context
func WrapInvalid(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalid, context, err)
}
