package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// headerMiddleware stamps a header so tests can observe chain order.
func headerMiddleware(key, value string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			clone := req.Clone(req.Context())
			clone.Header.Add(key, value)
			return next.RoundTrip(clone)
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	client := New()
	if client == nil {
		t.Fatal("New returned nil")
	}
	if got, want := client.HTTPClient().Timeout, 30*time.Second; got != want {
		t.Errorf("default timeout = %v, want %v", got, want)
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	client := New(WithTimeout(5 * time.Second))
	if got, want := client.HTTPClient().Timeout, 5*time.Second; got != want {
		t.Errorf("timeout = %v, want %v", got, want)
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{Timeout: 2 * time.Second}
	client := New(WithHTTPClient(custom))
	if client.HTTPClient() != custom {
		t.Error("custom http.Client not installed")
	}

	// nil must not replace the default.
	client = New(WithHTTPClient(nil))
	if client.HTTPClient() == nil {
		t.Error("nil client replaced the default")
	}
}

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Values accumulate outermost first.
		got := r.Header.Values("X-Chain")
		if len(got) != 2 || got[0] != "outer" || got[1] != "inner" {
			t.Errorf("X-Chain = %v, want [outer inner]", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(WithMiddleware(
		headerMiddleware("X-Chain", "outer"),
		headerMiddleware("X-Chain", "inner"),
	))

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestWithTransport(t *testing.T) {
	t.Parallel()

	called := false
	transport := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: req}, nil
	})

	client := New(WithTransport(transport))
	req, err := http.NewRequest(http.MethodGet, "http://unreachable.invalid/", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()

	if !called {
		t.Error("custom transport not used")
	}
}
