package porter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport is returned when a request cannot be sent or its response cannot be read.
	ErrTransport = errors.New("transport failure")
	// ErrSerialization is returned when a JSON body cannot be encoded or decoded.
	ErrSerialization = errors.New("serialization failure")
	// ErrAuth is returned when no access token could be obtained.
	ErrAuth = errors.New("authentication failure")
	// ErrSigning is returned when a JWT cannot be signed or the signing key is malformed.
	ErrSigning = errors.New("jwt signing failure")
	// ErrValidation is reserved for invalid pass data.
	ErrValidation = errors.New("invalid pass data")
	// ErrStatus is returned when the API returns an unexpected status code.
	ErrStatus = errors.New("unexpected status code")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedPlatform is returned by operations of unimplemented wallet platforms.
	ErrUnsupportedPlatform = errors.New("platform not supported")
	// ErrConfig is returned for missing or invalid credentials.
	ErrConfig = errors.New("configuration error")
)

// APIError is returned when the API answers with a non-2xx status.
// Body holds the raw response body.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %d: %s", http.StatusText(e.StatusCode), e.StatusCode, e.Body)
}

// Is reports whether e matches target. Every APIError matches [ErrStatus];
// a 404 also matches [ErrNotFound].
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrStatus:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}

	return false
}
