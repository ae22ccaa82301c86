package atoship

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	internalbackoff "github.com/atoship/atoship-go/internal/backoff"
)

// RetryPolicy decides, given a classified outcome and the attempt count,
// whether to retry and how long to wait first. Implementations must be pure
// apart from any jitter term so retry timing is testable.
type RetryPolicy interface {
	// ShouldRetry returns the delay before the next attempt and whether a
	// retry should happen at all. attempt is zero-based; retryAfter is the
	// server-provided delay from a 429 response, or zero when absent.
	ShouldRetry(attempt int, kind ErrorKind, retryAfter time.Duration) (time.Duration, bool)
}

// DefaultRetryPolicy retries transient outcomes (transport faults, 5xx, 429)
// with exponential backoff and jitter. A server-provided Retry-After always
// takes precedence over the computed delay.
type DefaultRetryPolicy struct {
	maxRetries        int
	initialBackoff    time.Duration
	maxBackoff        time.Duration
	backoffMultiplier float64
	jitter            float64
	backoffCalculator *internalbackoff.Calculator
}

// NewDefaultRetryPolicy creates the standard retry policy.
func NewDefaultRetryPolicy(maxRetries int, initialBackoff, maxBackoff time.Duration, multiplier, jitter float64) *DefaultRetryPolicy {
	return &DefaultRetryPolicy{
		maxRetries:        maxRetries,
		initialBackoff:    initialBackoff,
		maxBackoff:        maxBackoff,
		backoffMultiplier: multiplier,
		jitter:            jitter,
		backoffCalculator: internalbackoff.GetExponentialJitterCalculator(),
	}
}

// ShouldRetry implements the RetryPolicy interface.
func (p *DefaultRetryPolicy) ShouldRetry(attempt int, kind ErrorKind, retryAfter time.Duration) (time.Duration, bool) {
	if attempt >= p.maxRetries {
		return 0, false
	}
	if !kind.Retryable() {
		return 0, false
	}

	// Server-provided delay wins over the computed exponential value.
	if kind == KindRateLimit && retryAfter > 0 {
		return retryAfter, true
	}

	return p.calculateBackoff(attempt), true
}

func (p *DefaultRetryPolicy) calculateBackoff(attempt int) time.Duration {
	return p.backoffCalculator.Calculate(attempt, p.initialBackoff, p.maxBackoff, p.backoffMultiplier, p.jitter)
}

// parseRetryAfter parses a Retry-After header value. It supports both the
// delay-seconds format and the HTTP-date format. The result is capped at one
// hour; unparseable or non-positive values yield zero.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		if seconds > 0 {
			delay := time.Duration(seconds) * time.Second
			if delay > time.Hour {
				delay = time.Hour
			}
			return delay
		}
		return 0
	}

	if t, err := http.ParseTime(value); err == nil {
		delay := time.Until(t)
		if delay > 0 && delay <= time.Hour {
			return delay
		}
	}

	return 0
}
