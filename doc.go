// Package atoship is the Go client SDK for the atoship shipping and
// logistics API (orders, rates, labels, tracking, addresses, webhooks).
//
// Every resource operation is a thin call through one request pipeline:
//
//   - API key injection and fail-fast when no credential is configured
//   - Request/response schema validation with field-level errors
//   - Retries with exponential backoff + jitter, honoring server Retry-After
//   - Lazy, restartable pagination over list endpoints
//   - Bounded-concurrency batch submission with per-item failure isolation
//   - Prometheus metrics and structured debug logging with credential masking
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - One uniform APIResponse envelope for every call
//   - Safe concurrent use of a single *Client instance
//   - Deterministic retry timing under test (injectable sleep and jitter)
//
// Typical usage:
//
//	client, err := atoship.New("sk_live_...",
//	    atoship.WithMaxRetries(3),
//	    atoship.WithTimeout(30*time.Second),
//	    atoship.WithMetrics(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.CreateOrder(ctx, order)
//
// Only 429, 5xx and transport failures trigger retries; validation,
// authentication and not-found outcomes are terminal on first occurrence.
// The library avoids opinionated logging: provide a Logger (e.g. via
// WithSimpleLogger or WithZerolog) and enable WithDebug for per-attempt
// traces without noise.
package atoship
