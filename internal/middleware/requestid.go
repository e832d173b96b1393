package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation identifier. The
// controller echoes it into the response envelope's metadata, which lets a
// parsed record set be matched to the request that produced it in logs.
const RequestIDHeader = "X-Request-Id"

// RequestID returns a middleware that stamps every request with a fresh
// UUID, unless the caller already set one.
func RequestID() func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &requestIDTransport{next: next}
	}
}

type requestIDTransport struct {
	next http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		req = cloneRequest(req)
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	//nolint:wrapcheck // middleware passes through errors from the next layer
	return t.next.RoundTrip(req)
}
