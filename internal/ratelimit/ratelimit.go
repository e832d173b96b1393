// Package ratelimit constructs the token-bucket limiter used by the client.
package ratelimit

import "golang.org/x/time/rate"

// New creates a rate limiter for the given requests-per-minute budget.
// Tokens replenish continuously at requestsPerMinute/60 per second with a
// burst capacity of one minute's budget.
func New(requestsPerMinute int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
}
