// Package retry provides the single retry policy used by every outbound call:
// LLM completions, intent classification and web search.
package retry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jpillora/backoff"
)

// Class groups errors by how they should be retried.
type Class int

const (
	ClassTransient Class = iota
	ClassRateLimited
	ClassServerError
	ClassFatal
)

func (c Class) String() string {
	switch c {
	case ClassRateLimited:
		return "rate_limited"
	case ClassServerError:
		return "server_error"
	case ClassFatal:
		return "fatal"
	default:
		return "transient"
	}
}

// StatusCoder is implemented by client errors that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Classify is the default classifier.
//   - 429 is rate limited, 5xx is a server error
//   - other 4xx (except 408) and Permanent errors are fatal
//   - anything else, including network failures, is transient
func Classify(err error) Class {
	if err == nil {
		return ClassTransient
	}
	var perm *permanentError
	if errors.As(err, &perm) {
		return ClassFatal
	}
	if errors.Is(err, context.Canceled) {
		return ClassFatal
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		code := sc.StatusCode()
		switch {
		case code == http.StatusTooManyRequests:
			return ClassRateLimited
		case code >= 500:
			return ClassServerError
		case code == http.StatusRequestTimeout:
			return ClassTransient
		case code >= 400:
			return ClassFatal
		}
	}
	return ClassTransient
}

// Policy describes how many attempts to make and how long to wait between them.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Factor      float64
	// ExtendedMultiplier scales the delay for rate-limit and server errors.
	ExtendedMultiplier float64
	Classify           func(error) Class
	// Sleep waits for d or until ctx is done. Tests replace it.
	Sleep func(ctx context.Context, d time.Duration) error
	// OnRetry is called before each wait.
	OnRetry func(attempt int, class Class, delay time.Duration, err error)
}

// Default returns the policy used when a component has no explicit settings.
func Default() Policy {
	return Policy{
		MaxAttempts:        3,
		BaseDelay:          time.Second,
		MaxDelay:           30 * time.Second,
		Factor:             2,
		ExtendedMultiplier: 3,
	}
}

// Delay returns the wait before retry number n (1-based) after an error of class c.
func (p Policy) Delay(n int, c Class) time.Duration {
	if p.BaseDelay <= 0 || n < 1 {
		return 0
	}
	maxDelay := p.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}
	b := &backoff.Backoff{
		Min:    p.BaseDelay,
		Max:    maxDelay,
		Factor: p.Factor,
	}
	d := b.ForAttempt(float64(n - 1))
	if (c == ClassRateLimited || c == ClassServerError) && p.ExtendedMultiplier > 1 {
		d = time.Duration(float64(d) * p.ExtendedMultiplier)
	}
	return d
}

// Do runs fn until it succeeds, returns a fatal error, attempts run out or ctx ends.
// The last error is returned unchanged so callers can still match it.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	classify := p.Classify
	if classify == nil {
		classify = Classify
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return zero, lastErr
			}
			return zero, err
		}

		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		class := classify(err)
		if class == ClassFatal || attempt == attempts {
			break
		}

		d := p.Delay(attempt, class)
		if p.OnRetry != nil {
			p.OnRetry(attempt, class, d, err)
		}
		if err := sleep(ctx, d); err != nil {
			return zero, lastErr
		}
	}
	return zero, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
