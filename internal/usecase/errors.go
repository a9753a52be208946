package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMissingCredentials    = errors.New("upstream credentials are not configured")
)

// Upstream failure kinds. Clients wrap exactly one of these so the gateway can map
// every failure to its envelope message with errors.Is.
var (
	ErrRateLimited       = errors.New("upstream rate limit reached")
	ErrUpstreamAuth      = errors.New("upstream authorization failed")
	ErrUpstreamStatus    = errors.New("upstream returned non-success status")
	ErrUpstreamDecode    = errors.New("upstream response could not be decoded")
	ErrUpstreamTransport = errors.New("upstream could not be reached")
)

// StatusError is a non-2xx response other than 403 or an exhausted quota.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status=%d", ErrUpstreamStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s: status=%d body=%s", ErrUpstreamStatus, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}

// statusCodeOf returns the HTTP status carried by err, or 0.
func statusCodeOf(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
