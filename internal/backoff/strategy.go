package backoff

import (
	"math/rand"
	"time"
)

// Strategy defines the interface for backoff calculation algorithms.
type Strategy interface {
	// Calculate returns the backoff duration for the given attempt number
	// and parameters.
	Calculate(attempt int, initialBackoff, maxBackoff time.Duration, multiplier, jitter float64) time.Duration
}

// ExponentialJitterStrategy implements exponential backoff with symmetric
// uniform jitter: delay = min(initial * multiplier^attempt, max) scaled by a
// random factor in [1-jitter, 1+jitter]. With jitter == 0 the result is a
// pure function of (attempt, initial, max, multiplier), which keeps retry
// timing deterministic under test.
type ExponentialJitterStrategy struct{}

// Calculate implements the Strategy interface.
func (s ExponentialJitterStrategy) Calculate(attempt int, initialBackoff, maxBackoff time.Duration, multiplier, jitter float64) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	// Prevent overflow by limiting attempt
	if attempt > 30 {
		attempt = 30
	}

	backoff := time.Duration(float64(initialBackoff) * Pow(multiplier, attempt))
	if backoff < 0 || backoff > maxBackoff {
		backoff = maxBackoff
	}

	jitter = clampJitter(jitter)
	if jitter > 0 {
		factor := 1 + jitter*(2*rand.Float64()-1)
		backoff = time.Duration(float64(backoff) * factor)
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
		if backoff < 0 {
			backoff = 0
		}
	}
	return backoff
}

// clampJitter ensures jitter is within valid bounds [0, 1].
func clampJitter(jitter float64) float64 {
	if jitter < 0 {
		return 0
	}
	if jitter > 1 {
		return 1
	}
	return jitter
}

// Pow calculates base^exponent using integer exponentiation.
func Pow(base float64, exponent int) float64 {
	result := 1.0
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}
