// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"sync"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// transient failures. Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

const defaultMaxRetries = 3

// transient reports whether a response status indicates a failure worth
// retrying: rate limiting or a server-side error.
func transient(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// DoWithRetry executes an HTTP request and retries transient failures
// (network errors, HTTP 429, HTTP 5xx) with exponential backoff. The
// delay starts at RetryBaseDelay and doubles each attempt.
//
// When maxRetries is 0 the default (3) is used. Before each retry the
// response body, if any, is drained and closed. If the context is
// cancelled during a backoff wait the function returns ctx.Err(). After
// exhausting retries the last error or response is returned so the
// caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))

		if err == nil && !transient(resp.StatusCode) {
			return resp, nil
		}

		// Exhausted retries — surface the last outcome as-is.
		if attempt >= maxRetries {
			return resp, err
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// RateLimiter enforces a minimum delay between consecutive requests.
// A nil limiter or zero delay performs no waiting.
type RateLimiter struct {
	mu    sync.Mutex
	delay time.Duration
	last  time.Time
}

// NewRateLimiter returns a limiter with the given minimum inter-request delay.
func NewRateLimiter(delay time.Duration) *RateLimiter {
	return &RateLimiter{delay: delay}
}

// Wait blocks until at least the configured delay has passed since the
// previous call, or the context is cancelled.
func (l *RateLimiter) Wait(ctx context.Context) error {
	if l == nil || l.delay <= 0 {
		return nil
	}

	l.mu.Lock()
	now := time.Now()
	var wait time.Duration
	if !l.last.IsZero() {
		if elapsed := now.Sub(l.last); elapsed < l.delay {
			wait = l.delay - elapsed
		}
	}
	l.last = now.Add(wait)
	l.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
