package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:  http.StatusInternalServerError,

	crypto.ErrTokenInvalid:    http.StatusUnauthorized,
	crypto.ErrTokenExpired:    http.StatusUnauthorized,
	crypto.ErrPasswordTooLong: http.StatusBadRequest,

	ErrInvalidCarID:               http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusUnauthorized,
	store.ErrCarNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. The body is the
// status text so that internal details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
