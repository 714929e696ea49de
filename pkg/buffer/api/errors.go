package api

import (
	"errors"
	"net/http"

	apperrors "github.com/garunski/telemetry-buffer/pkg/buffer/errors"
)

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, apperrors.ErrInvalid) {
		return http.StatusBadRequest
	}
	if errors.Is(err, apperrors.ErrSinkUnavailable) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, apperrors.ErrStoreWrite) || errors.Is(err, apperrors.ErrStoreRemove) ||
		errors.Is(err, apperrors.ErrStoreIterate) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}

func extractErrorCode(err error) string {
	if err == nil {
		return "unknown_error"
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return "not_found"
	}
	if errors.Is(err, apperrors.ErrInvalid) {
		return "invalid"
	}
	if errors.Is(err, apperrors.ErrSinkUnavailable) {
		return "sink_unavailable"
	}
	if errors.Is(err, apperrors.ErrStoreWrite) {
		return "store_write_error"
	}
	if errors.Is(err, apperrors.ErrStoreRemove) {
		return "store_remove_error"
	}
	if errors.Is(err, apperrors.ErrStoreIterate) {
		return "store_iterate_error"
	}

	return "internal_error"
}
