package utils

import (
	"errors"
	"net/http"

	apperrors "gym-maintenance/pkg/errors"
)

var ErrorList = map[error]int{
	apperrors.ErrNotFound:             http.StatusNotFound,
	apperrors.ErrBadRequest:           http.StatusBadRequest,
	apperrors.ErrAlreadyExists:        http.StatusConflict,
	apperrors.ErrForbidden:            http.StatusForbidden,
	apperrors.ErrUnauthorized:         http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:   http.StatusUnauthorized,
	apperrors.ErrUserDisabled:         http.StatusUnauthorized,
	apperrors.ErrUserNotFound:         http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:      http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:    http.StatusUnauthorized,
	apperrors.ErrInvalidToken:         http.StatusUnauthorized,
	apperrors.ErrInvalidSigningMethod: http.StatusUnauthorized,
	apperrors.ErrTokenExpired:         http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:    http.StatusUnauthorized,
	apperrors.ErrAccountLocked:        http.StatusTooManyRequests,
}

// StatusFor maps a sentinel error (possibly wrapped) to its HTTP status.
func StatusFor(err error) (int, bool) {
	for target, code := range ErrorList {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
