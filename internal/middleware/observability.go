package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/isminet/isminet/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP
// requests.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	urlStr := req.URL.String()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "request_id", Value: req.Header.Get(RequestIDHeader)},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // logs the error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	t.metrics.RecordHTTPRequest(req.Method, normalizePath(req.URL.Path), resp.StatusCode, duration)

	return resp, nil
}

var (
	// macPattern matches MAC address path segments, which identify devices
	// and clients in stat/rest endpoints.
	macPattern = regexp.MustCompile(`/([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}(/|$)`)
	// objectIDPattern matches 24-hex controller object identifiers.
	objectIDPattern = regexp.MustCompile(`[0-9a-f]{24}`)
	// sitePattern matches the site segment: /api/s/{site}/ -> /api/s/:site/.
	sitePattern = regexp.MustCompile(`/api/s/[^/]+(/|$)`)

	// normalizedPathCache avoids re-running the regexes for repeated paths;
	// the endpoint set a process touches is small and stable.
	normalizedPathCache sync.Map
)

// normalizePath replaces dynamic path segments (site names, MAC addresses,
// object identifiers) with placeholders so metric label cardinality stays
// bounded.
//
// Examples:
//   - /api/s/default/stat/device/aa:bb:cc:dd:ee:ff -> /api/s/:site/stat/device/:mac
//   - /api/s/main/rest/networkconf/507f1f77bcf86cd799439011 -> /api/s/:site/rest/networkconf/:id
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // cache only stores strings
		return cached.(string)
	}

	normalized := sitePattern.ReplaceAllString(path, "/api/s/:site$1")
	normalized = macPattern.ReplaceAllStringFunc(normalized, func(match string) string {
		if match[len(match)-1] == '/' {
			return "/:mac/"
		}
		return "/:mac"
	})
	normalized = objectIDPattern.ReplaceAllString(normalized, ":id")

	normalizedPathCache.Store(path, normalized)

	return normalized
}
