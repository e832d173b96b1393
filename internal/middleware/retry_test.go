package middleware

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/isminet/isminet/internal/testutil"
)

func newRetryClient(maxRetries int) *http.Client {
	transport := Retry(RetryConfig{
		MaxRetries:  maxRetries,
		InitialWait: time.Millisecond,
	})(http.DefaultTransport)
	return &http.Client{Transport: transport}
}

func TestRetrySucceedsAfterTransientErrors(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerSequence(t, []testutil.Response{
		{StatusCode: http.StatusServiceUnavailable, Body: `{"error":"unavailable"}`},
		{StatusCode: http.StatusBadGateway, Body: `{"error":"bad gateway"}`},
		{StatusCode: http.StatusOK, Body: `{"meta":{"rc":"ok"},"data":[]}`},
	})
	defer server.Close()

	client := newRetryClient(3)
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d after retries", resp.StatusCode, http.StatusOK)
	}
}

func TestRetryDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	// One canned response only: a second request would fail the test.
	server := testutil.NewMockServerSequence(t, []testutil.Response{
		{StatusCode: http.StatusUnauthorized, Body: `{"meta":{"rc":"error","msg":"api.err.LoginRequired"}}`},
	})
	defer server.Close()

	client := newRetryClient(3)
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestRetryExhaustionReturnsLastResponse(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerSequence(t, []testutil.Response{
		{StatusCode: http.StatusInternalServerError, Body: `{}`},
		{StatusCode: http.StatusInternalServerError, Body: `{}`},
		{StatusCode: http.StatusInternalServerError, Body: `{}`},
	})
	defer server.Close()

	client := newRetryClient(2)
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d after exhaustion", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerSequence(t, []testutil.Response{
		{
			StatusCode: http.StatusTooManyRequests,
			Body:       `{}`,
			Header:     map[string]string{"Retry-After": "1"},
		},
		{StatusCode: http.StatusOK, Body: `{}`},
	})
	defer server.Close()

	client := newRetryClient(1)
	start := time.Now()
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if elapsed := time.Since(start); elapsed < time.Second {
		t.Errorf("retried after %v, want at least the 1s Retry-After", elapsed)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestRetryReplaysRequestBody(t *testing.T) {
	t.Parallel()

	const payload = `{"mac":"00:11:22:33:44:55","cmd":"restart"}`

	bodies := make([]string, 0, 2)
	server := testutil.NewMockServerMulti(t, map[string]http.HandlerFunc{
		"/cmd": func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			bodies = append(bodies, string(data))
			if len(bodies) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		},
	})
	defer server.Close()

	client := newRetryClient(2)
	resp, err := client.Post(server.URL+"/cmd", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	defer resp.Body.Close()

	if len(bodies) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(bodies))
	}
	for i, body := range bodies {
		if body != payload {
			t.Errorf("request %d body = %q, want %q", i, body, payload)
		}
	}
}

func TestRetryContextCancellation(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerSequence(t, []testutil.Response{
		{StatusCode: http.StatusServiceUnavailable, Body: `{}`},
	})
	defer server.Close()

	transport := Retry(RetryConfig{
		MaxRetries:  5,
		InitialWait: time.Minute, // would wait far past the deadline
	})(http.DefaultTransport)
	client := &http.Client{Transport: transport}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequestWithContext: %v", err)
	}

	start := time.Now()
	resp, err := client.Do(req) //nolint:bodyclose // error path returns no body
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected context cancellation error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cancellation took %v, should abort the backoff wait promptly", elapsed)
	}
}
