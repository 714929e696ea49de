package errors

import (
	"errors"
	"testing"
)

func TestWrapStoreWrite(t *testing.T) {
	originalErr := errors.New("disk full")
	wrapped := WrapStoreWrite(originalErr, "failed to cache event")

	if wrapped == nil {
		t.Fatal("WrapStoreWrite() should not return nil")
	}

	if !errors.Is(wrapped, ErrStoreWrite) {
		t.Error("WrapStoreWrite() should wrap with ErrStoreWrite")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapStoreWrite() should preserve original error")
	}

	// Test nil error
	if WrapStoreWrite(nil, "context") != nil {
		t.Error("WrapStoreWrite() should return nil for nil error")
	}
}

func TestWrapStoreRemove(t *testing.T) {
	originalErr := errors.New("delete failed")
	wrapped := WrapStoreRemove(originalErr, "failed to evict entry")

	if wrapped == nil {
		t.Fatal("WrapStoreRemove() should not return nil")
	}

	if !errors.Is(wrapped, ErrStoreRemove) {
		t.Error("WrapStoreRemove() should wrap with ErrStoreRemove")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapStoreRemove() should preserve original error")
	}

	// Test nil error
	if WrapStoreRemove(nil, "context") != nil {
		t.Error("WrapStoreRemove() should return nil for nil error")
	}
}

func TestWrapStoreIterate(t *testing.T) {
	originalErr := errors.New("iterator closed")
	wrapped := WrapStoreIterate(originalErr, "failed to scan pending events")

	if wrapped == nil {
		t.Fatal("WrapStoreIterate() should not return nil")
	}

	if !errors.Is(wrapped, ErrStoreIterate) {
		t.Error("WrapStoreIterate() should wrap with ErrStoreIterate")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapStoreIterate() should preserve original error")
	}

	// Test nil error
	if WrapStoreIterate(nil, "context") != nil {
		t.Error("WrapStoreIterate() should return nil for nil error")
	}
}

func TestWrapInvalid(t *testing.T) {
	originalErr := errors.New("bad value")
	wrapped := WrapInvalid(originalErr, "invalid max stored events")

	if wrapped == nil {
		t.Fatal("WrapInvalid() should not return nil")
	}

	if !errors.Is(wrapped, ErrInvalid) {
		t.Error("WrapInvalid() should wrap with ErrInvalid")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapInvalid() should preserve original error")
	}

	// Test nil error
	if WrapInvalid(nil, "context") != nil {
		t.Error("WrapInvalid() should return nil for nil error")
	}
}
