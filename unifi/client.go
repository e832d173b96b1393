// Package unifi is a typed client for the UniFi Network controller REST API.
//
// The client composes validated settings, a retry-capable HTTP transport,
// and the response models: every operation performs one synchronous request,
// validates the parsed records in full, and returns typed errors that
// distinguish configuration, transport, HTTP, and validation failures.
package unifi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/internal/httpclient"
	"github.com/isminet/isminet/internal/middleware"
	"github.com/isminet/isminet/internal/ratelimit"
	"github.com/isminet/isminet/observability"
	"github.com/isminet/isminet/settings"
)

const (
	// DefaultRateLimit is the default request budget per minute.
	DefaultRateLimit = 1000

	// DefaultMaxRetries is the default number of retries for failed requests.
	DefaultMaxRetries = 3
	// DefaultRetryWaitTime is the default initial wait between retries.
	DefaultRetryWaitTime = 1 * time.Second
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
)

// APIClient talks to one UniFi Network controller. It is safe to share:
// all state set at construction is read-only afterwards.
type APIClient struct {
	http     *httpclient.Client
	baseURL  string
	sitePath string
	logger   observability.Logger
}

// Config holds configuration for the API client. Most programs should build
// one from validated settings via New; NewWithConfig exists for callers that
// manage configuration themselves.
type Config struct {
	// ControllerURL is the base URL of the controller, e.g. "https://unifi.local:8443".
	ControllerURL string

	// APIKey is the API key for authentication.
	APIKey string

	// Site is the controller site name. Defaults to "default".
	Site string

	// APIVersion selects the API generation. Defaults to v1.
	APIVersion settings.APIVersion

	// VerifySSL enables TLS certificate verification. Controllers commonly
	// use self-signed certificates, so this defaults to off.
	VerifySSL bool

	// RateLimitPerMinute sets the request budget (defaults to 1000).
	RateLimitPerMinute int

	// MaxRetries sets the retry bound for transient failures.
	MaxRetries int

	// RetryWaitTime sets the initial wait between retries.
	RetryWaitTime time.Duration

	// Timeout sets the per-request HTTP timeout.
	Timeout time.Duration

	// HTTPClient overrides the underlying HTTP client (optional; used in
	// tests). Middleware still wraps it.
	HTTPClient *http.Client

	// Logger receives structured client logs. Defaults to a no-op logger.
	Logger observability.Logger

	// Metrics receives client metrics. Defaults to a no-op recorder.
	Metrics observability.MetricsRecorder
}

// New creates a client from validated process settings.
func New(s *settings.Settings) (*APIClient, error) {
	if s == nil {
		return nil, errors.New("settings are required")
	}
	return NewWithConfig(&Config{
		ControllerURL: s.BaseURL(),
		APIKey:        s.APIKey,
		Site:          s.Site,
		APIVersion:    s.APIVersion,
		VerifySSL:     s.VerifySSL,
		Timeout:       s.TimeoutDuration(),
	})
}

// NewWithConfig creates a client with explicit configuration.
func NewWithConfig(cfg *Config) (*APIClient, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.ControllerURL == "" {
		return nil, errors.New("controller URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	if cfg.Site == "" {
		cfg.Site = settings.DefaultSite
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = settings.V1
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimit
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryWaitTime == 0 {
		cfg.RetryWaitTime = DefaultRetryWaitTime
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}

	opts := []httpclient.Option{
		httpclient.WithTimeout(cfg.Timeout),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	}

	// Outermost first: observability sees every attempt's outcome, the
	// request ID is stable across retries, rate limiting admits each retry
	// attempt separately.
	chain := []httpclient.Middleware{
		middleware.Observability(logger, cfg.Metrics),
		middleware.RequestID(),
		middleware.Auth(cfg.APIKey),
		middleware.Retry(middleware.RetryConfig{
			MaxRetries:  cfg.MaxRetries,
			InitialWait: cfg.RetryWaitTime,
			Logger:      logger,
			Metrics:     cfg.Metrics,
		}),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: ratelimit.New(cfg.RateLimitPerMinute),
			Logger:  logger,
			Metrics: cfg.Metrics,
		}),
	}
	if !cfg.VerifySSL {
		chain = append(chain, middleware.TLSConfig(middleware.InsecureSkipVerify()))
	}
	opts = append(opts, httpclient.WithMiddleware(chain...))

	return &APIClient{
		http:     httpclient.New(opts...),
		baseURL:  strings.TrimRight(cfg.ControllerURL, "/"),
		sitePath: "/api/s/" + cfg.Site,
		logger:   logger,
	}, nil
}

// sitePathFor joins a site-scoped endpoint path.
func (c *APIClient) site(endpoint string) string {
	return c.sitePath + "/" + strings.TrimLeft(endpoint, "/")
}

// do performs one HTTP request and returns the raw response body.
// Network failures are marked as transport errors; non-2xx statuses become
// APIErrors carrying the controller's message when the body has one.
func (c *APIClient) do(ctx context.Context, method, path string, reqBody any) ([]byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s %s", method, path), ErrTransport)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to read response body"), ErrTransport)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Msg:        controllerMsg(body),
			Path:       path,
		}
	}

	return body, nil
}

// controllerMsg extracts the controller's error message from a response
// body, if the body is an envelope with one.
func controllerMsg(body []byte) string {
	var env struct {
		Meta struct {
			Msg string `json:"msg"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Meta.Msg
}
