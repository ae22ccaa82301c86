package atoship

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// WithConfig replaces the whole configuration draft. Later options still
// apply on top.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.draft = cfg
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.draft.BaseURL = baseURL
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.draft.Timeout = d
	}
}

// WithMaxRetries sets the maximum number of retry attempts after the first.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.draft.MaxRetries = n
	}
}

// WithInitialBackoff sets the first retry delay.
func WithInitialBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.initialBackoff = d
	}
}

// WithMaxBackoff caps the computed retry delay.
func WithMaxBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.maxBackoff = d
	}
}

// WithBackoffMultiplier sets the exponential growth factor.
func WithBackoffMultiplier(f float64) Option {
	return func(c *Client) {
		c.backoffMultiplier = f
	}
}

// WithJitter sets the jitter fraction for backoff, clamped to [0, 1].
// Zero makes retry delays fully deterministic.
func WithJitter(f float64) Option {
	return func(c *Client) {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		c.jitter = f
	}
}

// WithRetryPolicy replaces the default retry policy. A custom policy is
// kept across UpdateConfig calls.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Client) {
		c.retryPolicy = policy
		c.customRetryPolicy = policy != nil
	}
}

// WithHTTPClient sets a custom HTTP client for the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimiter enables a client-side token bucket: rps tokens per second
// with the given burst. Requests wait for a token before each attempt.
func WithRateLimiter(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsRegistry enables Prometheus metrics on a custom registerer.
func WithMetricsRegistry(registry prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollectorWithRegistry(registry)
	}
}

// WithMetricsCollector sets a pre-built metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithDebug enables per-attempt debug tracing. A Logger must also be set
// for traces to be emitted.
func WithDebug() Option {
	return func(c *Client) {
		c.draft.Debug = true
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets a custom debug configuration.
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithLogger sets the trace logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug tracing with a console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		WithDebug()(c)
		c.logger = NewSimpleLogger()
	}
}

// WithZerolog sets a zerolog-backed trace logger.
func WithZerolog(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = NewZerologLogger(logger)
	}
}

// WithRequestIDGenerator sets a custom function for generating trace IDs.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}

// WithSleepFunc replaces the retry sleep. Tests inject a recording fake to
// assert backoff timing without real delays.
func WithSleepFunc(sleep SleepFunc) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}
