// Package middleware provides the reusable HTTP transport layers the client
// chain is assembled from.
package middleware

import (
	"maps"
	"net/http"
)

// Auth returns a middleware that adds the controller authentication header
// and the standard JSON content headers to every request.
func Auth(apiKey string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &authTransport{
			next:   next,
			apiKey: apiKey,
		}
	}
}

type authTransport struct {
	next   http.RoundTripper
	apiKey string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so the caller's request is untouched.
	req = cloneRequest(req)

	//nolint:canonicalheader // X-API-KEY is the header name the controller expects
	req.Header.Set("X-API-KEY", t.apiKey)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	//nolint:wrapcheck // middleware passes through errors from the next layer
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
