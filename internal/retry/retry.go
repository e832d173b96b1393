// Package retry holds the retry policy shared by the HTTP middleware.
package retry

import (
	"strconv"
	"time"
)

// ShouldRetry reports whether an HTTP status code is transient:
//   - 429 (Too Many Requests)
//   - 5xx server errors
//
// Everything else, including other 4xx codes, is permanent and must surface
// to the caller immediately.
func ShouldRetry(statusCode int) bool {
	return statusCode >= 500 || statusCode == 429
}

// ParseRetryAfter parses a Retry-After header given in seconds and returns
// the wait duration. HTTP-date values and unparsable input yield 0.
func ParseRetryAfter(retryAfterHeader string) time.Duration {
	if retryAfterHeader == "" {
		return 0
	}

	seconds, err := strconv.Atoi(retryAfterHeader)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
