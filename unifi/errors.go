package unifi

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/internal/retry"
)

// ErrTransport marks network-level failures: connection errors, timeouts,
// TLS problems. Transport failures are retried by the client before they
// surface.
var ErrTransport = errors.New("transport failure")

// IsTransportError reports whether err is a network-level failure, as
// opposed to an HTTP status error or a response validation error.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// APIError is a non-2xx controller response, or a 2xx response whose
// envelope metadata flags an error. Msg carries the controller's own error
// message when one was present.
type APIError struct {
	StatusCode int
	Msg        string
	Path       string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("API error: status=%d msg=%q path=%s", e.StatusCode, e.Msg, e.Path)
	}
	return fmt.Sprintf("API error: status=%d path=%s", e.StatusCode, e.Path)
}

// Retryable reports whether the status code is in the transient subset
// (429, 5xx). The client has already exhausted its retries by the time an
// APIError surfaces; this is informational for callers with their own retry
// policies.
func (e *APIError) Retryable() bool {
	return retry.ShouldRetry(e.StatusCode)
}

// AsAPIError unwraps err to an APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
